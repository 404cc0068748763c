package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"bleu/internal/adapter/analyzer"
	"bleu/internal/adapter/fs"
	"bleu/internal/adapter/scorer"
	"bleu/internal/domain"
	"bleu/internal/usecase"
)

// jsonResult adds the displayed score to the raw statistics so that text and
// JSON output agree.
type jsonResult struct {
	*domain.Result
	Score string `json:"score"`
}

func runScore(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg := opts.cfg

	refPaths, err := fs.ExpandPaths(args[1:])
	if err != nil {
		return fmt.Errorf("invalid reference files: %w", err)
	}

	seg, err := newSegmenter(cmd, cfg.Segment.Language, cfg.Output.Progress)
	if err != nil {
		return err
	}

	scoreUC := usecase.NewScoreUseCase(seg, scorer.NewBLEU())
	result, err := scoreUC.Score(args[0], refPaths)
	if err != nil {
		return err
	}

	switch result.Granularity {
	case domain.Sentence:
		fmt.Fprintln(cmd.ErrOrStderr(), "SENTENCE BLEU")
	case domain.Corpus:
		fmt.Fprintln(cmd.ErrOrStderr(), "CORPUS BLEU")
	}

	if cfg.Output.Format == "json" {
		output, err := json.MarshalIndent(jsonResult{
			Result: result,
			Score:  result.Format(cfg.Score.Digits),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Format(cfg.Score.Digits))
	return nil
}

func newSegmenter(cmd *cobra.Command, language string, progress bool) (*analyzer.Segmenter, error) {
	lang, err := domain.ParseLanguage(language)
	if err != nil {
		return nil, err
	}

	var segOpts []analyzer.Option
	if progress {
		segOpts = append(segOpts, analyzer.WithProgress(newProgress(cmd.ErrOrStderr())))
	}
	return analyzer.NewSegmenter(lang, segOpts...)
}
