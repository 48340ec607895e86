package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
)

// WriteProgressReporter implements generate.Reporter with a progress bar.
type WriteProgressReporter struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

// NewWriteProgressReporter creates a new write progress reporter.
func NewWriteProgressReporter(quiet bool) *WriteProgressReporter {
	return &WriteProgressReporter{quiet: quiet}
}

func (r *WriteProgressReporter) OnWriteStart(totalFiles int) {
	if r.quiet || totalFiles < 2 {
		return
	}
	r.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Writing manifests"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (r *WriteProgressReporter) OnFileWritten(name string) {
	if r.bar != nil {
		r.bar.Add(1)
	}
}

func (r *WriteProgressReporter) OnWriteComplete() {
	if r.bar != nil {
		r.bar.Finish()
		r.bar = nil
	}
}
