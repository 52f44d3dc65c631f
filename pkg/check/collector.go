package check

import "sync/atomic"

// Collector accumulates outcomes while a suite tree is traversed. Every
// started unit records exactly one of success, failure or error against
// the collector, unless the run is stopped first. Implementations never
// return errors and never panic; recording must always succeed.
type Collector interface {
	// StartUnit brackets the beginning of a unit run and increments
	// the run count unconditionally.
	StartUnit(u Unit)
	// StopUnit brackets the end of a unit run; it is called on every
	// exit path, success or not.
	StopUnit(u Unit)
	AddSuccess(u Unit)
	AddFailure(u Unit, d *Detail)
	AddError(u Unit, d *Detail)
	// WasSuccessful reports whether no failures and no errors were
	// recorded.
	WasSuccessful() bool
	// RequestStop asks the traversal to halt at the next unit
	// boundary. A running unit always completes first.
	RequestStop()
	ShouldStop() bool
}

// Record pairs a unit with the detail recorded against it.
type Record struct {
	Unit   Unit
	Detail *Detail
}

// Results is the basic Collector: a run counter plus ordered failure
// and error records. The stop flag is atomic so an interrupt handler
// may set it from outside the traversal goroutine.
type Results struct {
	runs     int
	failures []Record
	errors   []Record
	stop     atomic.Bool
}

// NewResults returns an empty collector.
func NewResults() *Results { return &Results{} }

func (r *Results) StartUnit(u Unit) { r.runs++ }

func (r *Results) StopUnit(u Unit) {}

func (r *Results) AddSuccess(u Unit) {}

func (r *Results) AddFailure(u Unit, d *Detail) {
	r.failures = append(r.failures, Record{Unit: u, Detail: d})
}

func (r *Results) AddError(u Unit, d *Detail) {
	r.errors = append(r.errors, Record{Unit: u, Detail: d})
	if d != nil && d.Interrupted {
		r.RequestStop()
	}
}

func (r *Results) WasSuccessful() bool {
	return len(r.failures) == 0 && len(r.errors) == 0
}

func (r *Results) RequestStop() { r.stop.Store(true) }

func (r *Results) ShouldStop() bool { return r.stop.Load() }

// Runs returns how many units were started.
func (r *Results) Runs() int { return r.runs }

// Failures returns the recorded failures in occurrence order.
func (r *Results) Failures() []Record { return r.failures }

// Errors returns the recorded errors in occurrence order.
func (r *Results) Errors() []Record { return r.errors }
