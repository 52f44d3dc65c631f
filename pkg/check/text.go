package check

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Verbosity levels for TextResults.
const (
	Quiet   = 0 // no per-unit progress
	Dots    = 1 // one character per unit
	Verbose = 2 // one full line per unit
)

const sepWidth = 70

// TextResults is a Collector that streams progress as units run and
// buffers diagnostic detail until Summarize. Progress goes to the
// output stream, failure/error blocks and the final verdict to the
// diagnostic stream, so the two can be routed independently.
type TextResults struct {
	*Results

	out       io.Writer
	diag      io.Writer
	verbosity int
	explain   bool

	// OnUnitDone, if set, is called after every finished unit with
	// the running tallies. Used to drive progress displays.
	OnUnitDone func(runs, failures, errors int)

	started time.Time
	stopped time.Time
}

// NewTextResults returns a streaming collector writing progress to out
// and diagnostics to diag.
func NewTextResults(out, diag io.Writer, verbosity int, explain bool) *TextResults {
	return &TextResults{
		Results:   NewResults(),
		out:       out,
		diag:      diag,
		verbosity: verbosity,
		explain:   explain,
	}
}

// Begin marks the start of the timed span.
func (t *TextResults) Begin() { t.started = time.Now() }

// End marks the end of the timed span.
func (t *TextResults) End() { t.stopped = time.Now() }

// Elapsed returns the timed span between Begin and End.
func (t *TextResults) Elapsed() time.Duration { return t.stopped.Sub(t.started) }

func (t *TextResults) StartUnit(u Unit) {
	t.Results.StartUnit(u)
	if t.verbosity >= Verbose {
		fmt.Fprintf(t.out, "%s (%s) ... ", u.ID(), u.Description())
	}
}

func (t *TextResults) StopUnit(u Unit) {
	t.Results.StopUnit(u)
	if t.OnUnitDone != nil {
		t.OnUnitDone(t.Runs(), len(t.Failures()), len(t.Errors()))
	}
}

func (t *TextResults) AddSuccess(u Unit) {
	t.Results.AddSuccess(u)
	switch t.verbosity {
	case Dots:
		fmt.Fprint(t.out, ".")
	case Verbose:
		fmt.Fprintln(t.out, "ok")
	}
}

func (t *TextResults) AddFailure(u Unit, d *Detail) {
	t.Results.AddFailure(u, d)
	switch t.verbosity {
	case Dots:
		fmt.Fprint(t.out, "F")
	case Verbose:
		fmt.Fprintln(t.out, "FAIL")
	}
}

func (t *TextResults) AddError(u Unit, d *Detail) {
	t.Results.AddError(u, d)
	switch t.verbosity {
	case Dots:
		fmt.Fprint(t.out, "E")
	case Verbose:
		fmt.Fprintln(t.out, "ERROR")
	}
}

// Summarize renders the buffered error and failure blocks, the elapsed
// time and run count, and the final verdict. Blocks and the verdict go
// to the diagnostic stream; the separator rule and timing line to the
// output stream.
func (t *TextResults) Summarize() {
	if t.verbosity >= Dots {
		fmt.Fprintln(t.out)
	}
	t.printBlocks("ERROR", t.Errors())
	t.printBlocks("FAIL", t.Failures())

	fmt.Fprintln(t.out, strings.Repeat("-", sepWidth))
	runs := t.Runs()
	plural := "s"
	if runs == 1 {
		plural = ""
	}
	fmt.Fprintf(t.out, "Ran %d test%s in %.3fs\n\n", runs, plural, t.Elapsed().Seconds())

	if t.WasSuccessful() {
		fmt.Fprintln(t.diag, "OK")
		return
	}
	parts := []string{}
	if n := len(t.Failures()); n > 0 {
		parts = append(parts, fmt.Sprintf("failures=%d", n))
	}
	if n := len(t.Errors()); n > 0 {
		parts = append(parts, fmt.Sprintf("errors=%d", n))
	}
	fmt.Fprintf(t.diag, "FAILED (%s)\n", strings.Join(parts, ", "))
}

func (t *TextResults) printBlocks(flavour string, recs []Record) {
	for _, rec := range recs {
		fmt.Fprintln(t.diag, strings.Repeat("*", sepWidth))
		fmt.Fprintf(t.diag, "%s %s (%s)\n", flavour, rec.Unit.ID(), rec.Unit.Description())
		if t.explain {
			if expl := rec.Unit.Explanation(); expl != "" {
				fmt.Fprintln(t.diag, strings.Repeat("-", sepWidth))
				fmt.Fprintln(t.diag, expl)
			}
		}
		fmt.Fprintln(t.diag, strings.Repeat("-", sepWidth))
		if rec.Detail != nil {
			fmt.Fprintln(t.diag, rec.Detail.Render())
		}
		fmt.Fprintln(t.diag)
	}
}
