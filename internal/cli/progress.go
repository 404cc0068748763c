package cli

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"bleu/internal/adapter/analyzer"
)

// newProgress renders segmentation progress. A new bar starts with each file.
func newProgress(w io.Writer) analyzer.ProgressFunc {
	var bar *progressbar.ProgressBar

	return func(done, total int) {
		if bar == nil || done == 1 {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Segmenting[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(w)
				}),
			)
		}
		_ = bar.Set(done)
	}
}
