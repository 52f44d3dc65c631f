package ui

import (
	"fmt"

	"github.com/fatih/color"

	"utest/internal/storage"
)

// Formatter renders run statistics for the terminal.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintSummary displays the run's meta statistics as a colored table.
func (f *Formatter) PrintSummary(out *storage.RunOutput) {
	meta := out.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                      Run Statistics                           ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Units Run")
	color.White("%-27d │\n", meta.UnitsRun)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failures")
	color.Red("%-27d │\n", meta.Failures)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Errors")
	color.Red("%-27d │\n", meta.Errors)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.3fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.Success {
		color.Green("✓ All checks passed!")
	} else {
		color.Red("✗ %d failure(s), %d error(s)", meta.Failures, meta.Errors)
	}
}

// PrintUnitList prints resolved unit ids, one per line.
func (f *Formatter) PrintUnitList(ids []string) {
	if len(ids) == 0 {
		color.Yellow("No checks found")
		return
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	fmt.Println()
	color.Cyan("%d check(s)", len(ids))
}
