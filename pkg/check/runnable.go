// Package check implements the core test execution engine: test units
// with a setUp/check/tearDown lifecycle, assertion helpers, result
// collectors and composable suites. Execution is single-threaded; the
// only cancellation mechanism is the collector's stop flag, honored at
// unit boundaries.
package check

import (
	"fmt"
	"runtime"
	"strings"
)

// Runnable is the capability shared by units and suites: execute
// against a collector and report how many atomic cases a run covers.
type Runnable interface {
	Run(c Collector)
	CountCases() int
}

// Unit is a single executable check with reporting metadata.
type Unit interface {
	Runnable
	// ID returns the stable identity, owning fixture name + check name.
	ID() string
	// Description returns the one-line summary shown next to the id.
	Description() string
	// Explanation returns the optional long-form text for diagnostics.
	Explanation() string
	// Name returns the check discriminator used for suite name lookup.
	Name() string
}

// Kind discriminates how a recorded unit run ended.
type Kind int

const (
	KindFailure Kind = iota // assertion-driven mismatch
	KindError               // any other raised problem
)

func (k Kind) String() string {
	if k == KindFailure {
		return "failure"
	}
	return "error"
}

// Detail describes one recorded failure or error: the value type that
// carried the problem, its message and the trimmed stack trace.
type Detail struct {
	Kind        Kind
	Type        string
	Message     string
	Trace       []string
	Interrupted bool
}

// Render writes the detail the way a traceback is shown: the stack
// first, then the "type: message" line.
func (d *Detail) Render() string {
	var b strings.Builder
	if len(d.Trace) > 0 {
		b.WriteString("Traceback (most recent call last):\n")
		for _, line := range d.Trace {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "%s: %s", d.Type, d.Message)
	return b.String()
}

// captureTrace records the current call stack, dropping runtime and
// harness dispatch frames since they carry no diagnostic value.
func captureTrace(skip int) []string {
	pc := make([]uintptr, 48)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	var out []string
	for {
		f, more := frames.Next()
		if !harnessFrame(f.Function) {
			out = append(out, fmt.Sprintf("  %s\n    %s:%d", f.Function, f.File, f.Line))
		}
		if !more {
			break
		}
	}
	return out
}

func harnessFrame(fn string) bool {
	if fn == "" || strings.HasPrefix(fn, "runtime.") {
		return true
	}
	if strings.HasPrefix(fn, "reflect.") {
		return true
	}
	// own dispatch frames: utest/pkg/check.(*Case).invoke etc.
	return strings.HasPrefix(fn, "utest/pkg/check.")
}
