package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar renders running tallies while units execute. It writes
// to stderr so the collector's progress stream stays clean.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar sized for count units.
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(
			color.CyanString("Running checks: ")+
				color.RedString("[failed: 0]"),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &ProgressBar{bar: bar}
}

// Update advances the bar to done units with the given failed tally
// (failures plus errors).
func (p *ProgressBar) Update(done, failed int) {
	p.bar.Set(done)
	p.bar.Describe(
		color.CyanString("Running checks: ") +
			color.RedString("[failed: %d]", failed),
	)
}

// Finish completes the bar.
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
