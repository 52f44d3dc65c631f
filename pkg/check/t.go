package check

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// T is passed to every check body and provides the assertion helpers.
// Each helper raises a distinguished failure value on mismatch, which
// the running Case classifies as a failure rather than an error; the
// helpers are building blocks, not separate outcomes.
type T struct{}

// failureError is the distinguished value carried by a raised
// assertion failure.
type failureError struct {
	msg   string
	trace []string
}

// interruption aborts the current check and asks the whole run to stop
// at the next unit boundary.
type interruption struct{ msg string }

// Interrupt aborts the current check; the unit is recorded as an error
// and the remainder of the run is abandoned at the next unit boundary.
func Interrupt(msg string) {
	panic(&interruption{msg: msg})
}

func (t *T) raise(msg string) {
	panic(&failureError{msg: msg, trace: captureTrace(4)})
}

// Fail fails the check immediately with the given message.
func (t *T) Fail(msg string) { t.raise(msg) }

// FailIf fails the check if cond is true.
func (t *T) FailIf(cond bool, msg ...string) {
	if cond {
		t.raise(firstOr(msg, "condition unexpectedly true"))
	}
}

// FailUnless fails the check unless cond is true.
func (t *T) FailUnless(cond bool, msg ...string) {
	if !cond {
		t.raise(firstOr(msg, "condition unexpectedly false"))
	}
}

// FailUnlessEqual fails the check if the two values are unequal under
// deep comparison. The default message carries both values and, where
// the values are diffable, a structured diff.
func (t *T) FailUnlessEqual(first, second interface{}, msg ...string) {
	if reflect.DeepEqual(first, second) {
		return
	}
	m := firstOr(msg, "")
	if m == "" {
		m = fmt.Sprintf("%v != %v", first, second)
		if d := safeDiff(first, second); d != "" {
			m += "\n" + d
		}
	}
	t.raise(m)
}

// FailIfEqual fails the check if the two values are equal under deep
// comparison.
func (t *T) FailIfEqual(first, second interface{}, msg ...string) {
	if !reflect.DeepEqual(first, second) {
		return
	}
	t.raise(firstOr(msg, fmt.Sprintf("%v == %v", first, second)))
}

// FailUnlessAlmostEqual fails the check if the values differ once
// their difference is rounded to the given number of decimal places.
// Decimal places are counted from zero, not significant digits.
func (t *T) FailUnlessAlmostEqual(first, second float64, places int, msg ...string) {
	if roundTo(second-first, places) == 0 {
		return
	}
	t.raise(firstOr(msg,
		fmt.Sprintf("%v != %v within %d places", first, second, places)))
}

// FailIfAlmostEqual fails the check if the values are equal once their
// difference is rounded to the given number of decimal places.
func (t *T) FailIfAlmostEqual(first, second float64, places int, msg ...string) {
	if roundTo(second-first, places) != 0 {
		return
	}
	t.raise(firstOr(msg,
		fmt.Sprintf("%v == %v within %d places", first, second, places)))
}

// FailUnlessRaises runs fn and fails the check if it returns nil. A
// returned error that does not match target is re-raised unchanged, so
// the unit is recorded as an error, exactly as for any unexpected
// problem.
func (t *T) FailUnlessRaises(target error, fn func() error, msg ...string) {
	err := fn()
	if err == nil {
		t.raise(firstOr(msg, fmt.Sprintf("%v not raised", target)))
	}
	if !errors.Is(err, target) {
		panic(err)
	}
}

func firstOr(msg []string, fallback string) string {
	if len(msg) > 0 && msg[0] != "" {
		return msg[0]
	}
	return fallback
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

// safeDiff renders a go-cmp diff, swallowing the panic cmp raises on
// values it cannot compare (unexported fields and the like).
func safeDiff(first, second interface{}) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	return cmp.Diff(first, second)
}
