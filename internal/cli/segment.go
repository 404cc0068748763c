package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bleu/internal/domain"
)

func newSegmentCmd(opts *rootOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "segment FILE",
		Short: "Print the tokens of every line of a file",
		Long: `Tokenize a file the same way it is tokenized for scoring and print one
line of space-separated tokens per input line.

Examples:
  bleu segment hyp.txt
  bleu segment ref.txt -l ja --mode ref`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := domain.ParseMode(mode)
			if err != nil {
				return err
			}

			seg, err := newSegmenter(cmd, opts.cfg.Segment.Language, opts.cfg.Output.Progress)
			if err != nil {
				return err
			}
			out, err := seg.SegmentFile(args[0], m)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if m == domain.ModeReference {
				for _, group := range out.References {
					for _, ref := range group {
						fmt.Fprintln(w, strings.Join(ref, " "))
					}
				}
				return nil
			}
			for _, hyp := range out.Hypotheses {
				fmt.Fprintln(w, strings.Join(hyp, " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(domain.ModeHypothesis), "segmentation mode: hyp or ref")
	return cmd
}
