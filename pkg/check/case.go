package check

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// SetUpper is implemented by fixtures that need per-check preparation.
// A non-nil error (or a panic) skips the check and its tearDown and
// records the unit as an error.
type SetUpper interface{ SetUp() error }

// TearDowner is implemented by fixtures that need per-check cleanup.
// TearDown runs whenever SetUp succeeded, even after a failed check; a
// non-nil error (or a panic) forces the unit's outcome to an error.
type TearDowner interface{ TearDown() error }

// Case binds one check to the unit lifecycle: setUp, check body,
// tearDown. Identity and documentation are fixed at construction and
// may be overridden afterwards with the Set* methods.
type Case struct {
	id          string
	name        string
	description string
	explanation string

	body     func(*T)
	setUp    func() error
	tearDown func() error
}

// CaseConfig describes one bound check for NewCase.
type CaseConfig struct {
	// Fixture is the owning fixture's name; Check the method name.
	Fixture string
	Check   string
	// FixtureDoc and CheckDoc are combined into the case description
	// and explanation: first line is the description, the remainder
	// the explanation.
	FixtureDoc string
	CheckDoc   string
	SetUp      func() error
	TearDown   func() error
	Body       func(*T)
}

// NewCase builds a method-based test unit.
func NewCase(cfg CaseConfig) *Case {
	fixtureDesc, fixtureExpl := SplitDoc(cfg.FixtureDoc)
	checkDesc, checkExpl := SplitDoc(cfg.CheckDoc)
	return &Case{
		id:          cfg.Fixture + "." + cfg.Check,
		name:        cfg.Check,
		description: combineDescriptions(fixtureDesc, checkDesc),
		explanation: combineExplanations(fixtureExpl, checkExpl),
		body:        cfg.Body,
		setUp:       cfg.SetUp,
		tearDown:    cfg.TearDown,
	}
}

// FuncCase adapts a free check function, plus optional setUp and
// tearDown functions, to the unit contract. Identity defaults to the
// function's own symbol name.
type FuncCase struct{ Case }

// FuncOption customizes a FuncCase.
type FuncOption func(*FuncCase)

// WithName overrides the derived id and name.
func WithName(name string) FuncOption {
	return func(fc *FuncCase) { fc.id, fc.name = name, name }
}

// WithDoc sets the description/explanation from one doc text.
func WithDoc(doc string) FuncOption {
	return func(fc *FuncCase) {
		fc.description, fc.explanation = SplitDoc(doc)
	}
}

// WithSetUp attaches a setUp function.
func WithSetUp(fn func() error) FuncOption {
	return func(fc *FuncCase) { fc.setUp = fn }
}

// WithTearDown attaches a tearDown function.
func WithTearDown(fn func() error) FuncOption {
	return func(fc *FuncCase) { fc.tearDown = fn }
}

// NewFuncCase wraps body as a single test unit.
func NewFuncCase(body func(*T), opts ...FuncOption) *FuncCase {
	name := funcName(body)
	fc := &FuncCase{Case: Case{id: name, name: name, body: body}}
	for _, opt := range opts {
		opt(fc)
	}
	return fc
}

func funcName(fn interface{}) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

func (cs *Case) ID() string          { return cs.id }
func (cs *Case) Name() string        { return cs.name }
func (cs *Case) Description() string { return cs.description }
func (cs *Case) Explanation() string { return cs.explanation }

// SetID overrides the derived identity.
func (cs *Case) SetID(id string) { cs.id = id }

// SetDescription overrides the derived one-line description.
func (cs *Case) SetDescription(d string) { cs.description = d }

// SetExplanation overrides the derived long-form explanation.
func (cs *Case) SetExplanation(e string) { cs.explanation = e }

func (cs *Case) CountCases() int { return 1 }

// Run executes the unit lifecycle against c. The collector is always
// notified that the unit started and stopped; a setUp problem skips
// both the check and tearDown; tearDown runs after the check no matter
// how the check ended, and a tearDown problem forces the outcome to an
// error even if the check succeeded.
func (cs *Case) Run(c Collector) {
	c.StartUnit(cs)
	defer c.StopUnit(cs)

	if cs.setUp != nil {
		if d := runHook(cs.setUp); d != nil {
			c.AddError(cs, d)
			return
		}
	}

	d := cs.invoke()
	ok := d == nil
	if d != nil {
		if d.Kind == KindFailure {
			c.AddFailure(cs, d)
		} else {
			c.AddError(cs, d)
		}
	}
	if cs.tearDown != nil {
		if td := runHook(cs.tearDown); td != nil {
			c.AddError(cs, td)
			ok = false
		}
	}
	if ok {
		c.AddSuccess(cs)
	}
}

// invoke runs the check body and classifies its ending: a raised
// assertion failure maps to a failure detail, any other panic to an
// error detail, a normal return to nil.
func (cs *Case) invoke() (d *Detail) {
	defer func() {
		if r := recover(); r != nil {
			d = detailFromPanic(r)
		}
	}()
	cs.body(&T{})
	return nil
}

// runHook executes a setUp or tearDown function; any problem, raised
// or returned, becomes an error detail.
func runHook(fn func() error) (d *Detail) {
	defer func() {
		if r := recover(); r != nil {
			d = detailFromPanic(r)
			d.Kind = KindError
		}
	}()
	if err := fn(); err != nil {
		return &Detail{
			Kind:    KindError,
			Type:    fmt.Sprintf("%T", err),
			Message: err.Error(),
		}
	}
	return nil
}

func detailFromPanic(r interface{}) *Detail {
	switch v := r.(type) {
	case *failureError:
		return &Detail{
			Kind:    KindFailure,
			Type:    "failure",
			Message: v.msg,
			Trace:   v.trace,
		}
	case *interruption:
		return &Detail{
			Kind:        KindError,
			Type:        "interrupt",
			Message:     v.msg,
			Trace:       captureTrace(3),
			Interrupted: true,
		}
	case error:
		return &Detail{
			Kind:    KindError,
			Type:    fmt.Sprintf("%T", v),
			Message: v.Error(),
			Trace:   captureTrace(3),
		}
	default:
		return &Detail{
			Kind:    KindError,
			Type:    fmt.Sprintf("%T", v),
			Message: fmt.Sprintf("%v", v),
			Trace:   captureTrace(3),
		}
	}
}

// SplitDoc splits documentation text into its first line (the
// description) and the trimmed remainder (the explanation).
func SplitDoc(doc string) (description, explanation string) {
	if doc == "" {
		return "", ""
	}
	lines := strings.Split(doc, "\n")
	description = strings.TrimSpace(lines[0])
	if len(lines) > 1 {
		trimmed := make([]string, 0, len(lines)-1)
		for _, ln := range lines[1:] {
			trimmed = append(trimmed, strings.TrimSpace(ln))
		}
		explanation = strings.TrimSpace(strings.Join(trimmed, "\n"))
	}
	return description, explanation
}

// combineDescriptions joins fixture- and check-level descriptions with
// a comma, only when both are non-empty. The exact format is
// load-bearing for report parsers and must not change.
func combineDescriptions(fixture, check string) string {
	if fixture == "" {
		return check
	}
	if check == "" {
		return fixture
	}
	return fixture + ", " + check
}

func combineExplanations(fixture, check string) string {
	if fixture == "" {
		return check
	}
	return strings.Join([]string{
		"Fixture Explanation:",
		"--------------------",
		fixture,
		"",
		"Test Explanation:",
		"-----------------",
		check,
	}, "\n")
}
