// Package run drives a suite against a fresh text collector and
// renders the summary.
package run

import (
	"io"

	"github.com/rs/zerolog"

	"utest/pkg/check"
)

// State is the runner's phase. A run moves Idle -> Running ->
// Summarizing -> Done; Done is terminal for that invocation.
type State int

const (
	Idle State = iota
	Running
	Summarizing
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Summarizing:
		return "summarizing"
	default:
		return "done"
	}
}

// Runner executes a root suite against a fresh TextResults per
// invocation, timing the span from first unit to last, then renders
// the summary. The collector's final WasSuccessful value is the
// process-level verdict.
type Runner struct {
	Out       io.Writer
	Diag      io.Writer
	Verbosity int
	Explain   bool

	// OnUnitDone is forwarded to the collector; used for progress
	// displays.
	OnUnitDone func(runs, failures, errors int)

	// Log traces state transitions; disabled by default.
	Log zerolog.Logger

	state   State
	current *check.TextResults
}

// New returns an idle runner writing progress to out and diagnostics
// to diag.
func New(out, diag io.Writer, verbosity int, explain bool) *Runner {
	return &Runner{
		Out:       out,
		Diag:      diag,
		Verbosity: verbosity,
		Explain:   explain,
		Log:       zerolog.Nop(),
		state:     Idle,
	}
}

// State returns the runner's current phase.
func (r *Runner) State() State { return r.state }

// RequestStop asks the in-flight run to halt at the next unit
// boundary. Safe to call from a signal handler goroutine; a no-op when
// nothing is running.
func (r *Runner) RequestStop() {
	if res := r.current; res != nil {
		res.RequestStop()
	}
}

// Run drives root to completion (or to a stop request) and summarizes.
// A finished runner may be reused; each invocation gets a fresh
// collector.
func (r *Runner) Run(root check.Runnable) *check.TextResults {
	res := check.NewTextResults(r.Out, r.Diag, r.Verbosity, r.Explain)
	res.OnUnitDone = r.OnUnitDone
	r.current = res

	r.state = Running
	r.Log.Debug().Int("cases", root.CountCases()).Msg("run started")
	res.Begin()
	root.Run(res)
	res.End()

	r.state = Summarizing
	r.Log.Debug().
		Int("runs", res.Runs()).
		Int("failures", len(res.Failures())).
		Int("errors", len(res.Errors())).
		Dur("elapsed", res.Elapsed()).
		Msg("run finished, summarizing")
	res.Summarize()

	r.state = Done
	r.current = nil
	return res
}
