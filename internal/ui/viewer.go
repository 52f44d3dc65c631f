package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"utest/internal/storage"
)

// Viewer displays failure records in an interactive TUI.
type Viewer interface {
	View(out *storage.RunOutput) error
}

// FailureViewer browses the last run's failure and error records:
// record list on the left, message and trace on the right.
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer.
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View opens the TUI; it returns when the user quits.
func (v *FailureViewer) View(out *storage.RunOutput) error {
	if len(out.Details) == 0 {
		color.Green("✓ No failures in the last run!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)
	list.SetBorder(true).SetTitle(" Failures ")
	list.SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	details.SetBorder(true).SetTitle(" Detail ")

	render := func(index int) {
		if index < 0 || index >= len(out.Details) {
			return
		}
		d := out.Details[index]
		var b strings.Builder
		fmt.Fprintf(&b, "[yellow]%s[white] %s\n\n", strings.ToUpper(d.Kind), d.ID)
		if d.Description != "" {
			fmt.Fprintf(&b, "[aqua]%s[white]\n\n", tview.Escape(d.Description))
		}
		fmt.Fprintf(&b, "%s\n", tview.Escape(d.Message))
		if len(d.Trace) > 0 {
			b.WriteString("\n[gray]")
			for _, line := range d.Trace {
				b.WriteString(tview.Escape(line))
				b.WriteString("\n")
			}
			b.WriteString("[white]")
		}
		if d.Explanation != "" {
			fmt.Fprintf(&b, "\n[green]%s[white]\n", tview.Escape(d.Explanation))
		}
		details.SetText(b.String())
		details.ScrollToBeginning()
	}

	for i, d := range out.Details {
		kind := "F"
		if d.Kind == "error" {
			kind = "E"
		}
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] [%s] %s", i+1, kind, d.ID),
			d.Message, 0, nil)
	}
	list.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		render(index)
	})
	render(0)

	header := tview.NewTextView().
		SetDynamicColors(true).
		SetText(fmt.Sprintf(
			" [red]%d failure(s), %d error(s)[white]   arrows: navigate, q: quit",
			out.Meta.Failures, out.Meta.Errors))

	columns := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 2, false)
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(columns, 0, 1, true)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape,
			event.Rune() == 'q', event.Rune() == 'Q':
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(layout, true).Run()
}
