package cli

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// progressReporter renders a progress bar over the modules of a
// repository analysis.
type progressReporter struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

func newProgressReporter(quiet bool) *progressReporter {
	return &progressReporter{quiet: quiet}
}

// OnModule is called before each module is analyzed.
func (p *progressReporter) OnModule(module string, index, total int) {
	if p.quiet {
		return
	}
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription("Analyzing modules"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(false),
		)
	}
	if index > 0 {
		p.bar.Add(1)
	}
}

// Finish completes and clears the bar.
func (p *progressReporter) Finish() {
	if p.bar == nil {
		return
	}
	p.bar.Finish()
	p.bar.Clear()
	p.bar = nil
}
