package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// DescWriting describes the bar shown while the contents document is written
const DescWriting = "Writing contents"

// NewProgressBar creates a consistently styled progress bar.
//
// The bar redraws itself in place on w (os.Stderr when nil), showing the
// percentage done and the processed/total count. A newline is written once
// the bar reaches total.
//
// Example:
//
//	bar := utils.NewProgressBar(os.Stderr, len(files), utils.DescWriting)
//	for _, f := range files {
//	    // Process f
//	    _ = bar.Add(1)
//	}
func NewProgressBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	if w == nil {
		w = os.Stderr
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}
