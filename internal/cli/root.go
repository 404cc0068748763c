package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bleu/config"
	"bleu/internal/log"
)

// rootOptions carries flag values and the resolved configuration for one run.
type rootOptions struct {
	cfgFile  string
	language string
	jsonOut  bool
	progress bool
	digits   int
	logLevel string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "bleu HYP_FILE REF_FILE [REF_FILE...]",
		Short: "Compute BLEU between a hypothesis file and reference files",
		Long: `bleu tokenizes a hypothesis file and one or more reference files line by line
and prints the BLEU score. A single hypothesis line is scored with sentence BLEU,
anything longer with corpus BLEU.

English is split into words, Japanese into morphemes and Chinese into characters.

Example usage:
  bleu hyp.txt ref.txt                 # English
  bleu hyp.txt ref.txt -l ja           # Japanese
  bleu hyp.txt 'refs/*.zh' -l zh       # several reference files
  bleu hyp.txt ref.txt --json          # full statistics`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, opts, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ./bleu.yaml)")
	flags.StringVarP(&opts.language, "language", "l", "en", "language: en, ja or zh")
	flags.BoolVar(&opts.progress, "progress", false, "show segmentation progress on stderr")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the full result as JSON")
	cmd.Flags().IntVar(&opts.digits, "digits", 3, "decimals printed for the score")

	cmd.AddCommand(newSegmentCmd(opts))
	cmd.AddCommand(newInitCmd(opts))
	return cmd
}

// resolve loads the configuration and applies explicitly set flags on top of it.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.Load(o.cfgFile)
	} else {
		dir, werr := os.Getwd()
		if werr != nil {
			return fmt.Errorf("failed to get working directory: %w", werr)
		}
		o.cfg, err = config.LoadFromDir(dir)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("language") {
		o.cfg.Segment.Language = o.language
	}
	if flags.Changed("progress") {
		o.cfg.Output.Progress = o.progress
	}
	if flags.Changed("log-level") {
		o.cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("json") && o.jsonOut {
		o.cfg.Output.Format = "json"
	}
	if flags.Changed("digits") {
		o.cfg.Score.Digits = o.digits
	}

	if err := o.cfg.Validate(); err != nil {
		return err
	}
	log.SetLevel(o.cfg.Logging.Level)
	return nil
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
