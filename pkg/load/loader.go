package load

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"utest/pkg/check"
)

// DefaultPrefix marks the methods of a fixture that are checks. Only
// exported methods are visible to reflection, so the prefix is
// capitalized.
const DefaultPrefix = "Test"

var tType = reflect.TypeOf((*check.T)(nil))

// Loader assembles suites from registered targets. Prefix selects the
// check methods of a fixture, SortNames orders them (natural string
// order by default). Loaders share no state between resolutions, so
// loading the same name twice yields structurally equal, distinct
// suites.
type Loader struct {
	Prefix    string
	SortNames func(a, b string) int
	registry  *Registry
}

// NewLoader returns a loader over reg with default prefix and
// ordering.
func NewLoader(reg *Registry) *Loader {
	return &Loader{
		Prefix:    DefaultPrefix,
		SortNames: strings.Compare,
		registry:  reg,
	}
}

// CaseNames enumerates the check method names of a fixture prototype,
// sorted with the loader's ordering. Methods promoted from embedded
// fixtures are included; a method overridden by the outer type appears
// once, since the outer method shadows the embedded one in the method
// set.
func (l *Loader) CaseNames(proto interface{}) []string {
	rt := reflect.TypeOf(proto)
	if rt == nil {
		return nil
	}
	var names []string
	for i := 0; i < rt.NumMethod(); i++ {
		m := rt.Method(i)
		if !strings.HasPrefix(m.Name, l.Prefix) {
			continue
		}
		if !isCheckMethod(m.Type) {
			continue
		}
		names = append(names, m.Name)
	}
	sort.Slice(names, func(i, j int) bool {
		return l.SortNames(names[i], names[j]) < 0
	})
	return names
}

// isCheckMethod reports whether a method type is func(recv, *check.T).
func isCheckMethod(mt reflect.Type) bool {
	return mt.NumIn() == 2 && mt.In(1) == tType && mt.NumOut() == 0
}

// FromFixture builds one suite from a fixture: one unit per check
// method, each bound to a fresh fixture instance, in sorted name
// order. The suite is named after the fixture's simple name.
func (l *Loader) FromFixture(f *Fixture) (*check.Suite, error) {
	names := l.CaseNames(f.Proto)
	suite := check.NewSuite(simpleName(f.Name))
	for _, name := range names {
		unit, err := l.bind(f, name)
		if err != nil {
			return nil, err
		}
		suite.Add(unit)
	}
	return suite, nil
}

// bind constructs one unit for the named check, bound to a fresh
// instance of the fixture. SetUp and TearDown are attached when the
// instance implements the corresponding interfaces.
func (l *Loader) bind(f *Fixture, name string) (*check.Case, error) {
	rt := reflect.TypeOf(f.Proto)
	if rt == nil || rt.Kind() != reflect.Ptr || rt.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("fixture %s: prototype must be a struct pointer, got %T", f.Name, f.Proto)
	}
	m, ok := rt.MethodByName(name)
	if !ok || !isCheckMethod(m.Type) {
		return nil, &ResolutionError{Name: f.Name + "." + name, Segment: name, Reason: "no such check"}
	}

	inst := reflect.New(rt.Elem()).Interface()
	body, ok := reflect.ValueOf(inst).MethodByName(name).Interface().(func(*check.T))
	if !ok {
		return nil, &ResolutionError{Name: f.Name + "." + name, Segment: name, Reason: "no such check"}
	}

	cfg := check.CaseConfig{
		Fixture:    f.Name,
		Check:      name,
		FixtureDoc: f.Doc,
		CheckDoc:   f.CheckDocs[name],
		Body:       body,
	}
	if s, ok := inst.(check.SetUpper); ok {
		cfg.SetUp = s.SetUp
	}
	if td, ok := inst.(check.TearDowner); ok {
		cfg.TearDown = td.TearDown
	}
	return check.NewCase(cfg), nil
}

// FromNamespace composes one suite from every fixture registered below
// ns, sorted by name; within each fixture, check ordering follows
// FromFixture.
func (l *Loader) FromNamespace(ns string) (*check.Suite, error) {
	suite := check.NewSuite("")
	for _, f := range l.registry.fixturesUnder(ns) {
		sub, err := l.FromFixture(f)
		if err != nil {
			return nil, err
		}
		suite.Add(sub)
	}
	return suite, nil
}

// FromRegistry composes one suite from every registered fixture. Used
// when an invocation names nothing.
func (l *Loader) FromRegistry() (*check.Suite, error) {
	return l.FromNamespace("")
}

// FromName resolves a dotted specifier to a runnable. The longest
// registered prefix wins; remaining segments walk through nested suite
// lookup or fixture check lookup. The target is then classified:
// namespace to the module rule, fixture to the fixture rule, bound
// check to a single-unit suite, suite or unit as-is, factory invoked
// with zero arguments. An unresolvable name is a hard error.
func (l *Loader) FromName(name string) (check.Runnable, error) {
	if name == "" {
		return nil, &ResolutionError{Name: name, Reason: "empty specifier"}
	}
	parts := strings.Split(name, ".")
	for i := len(parts); i > 0; i-- {
		prefix := strings.Join(parts[:i], ".")
		if e, ok := l.registry.lookup(prefix); ok {
			return l.resolveEntry(name, e, parts[i:])
		}
	}
	if l.registry.hasNamespace(name) {
		return l.FromNamespace(name)
	}
	return nil, &ResolutionError{Name: name, Segment: parts[0], Reason: "no registered target"}
}

func (l *Loader) resolveEntry(full string, e *entry, rest []string) (check.Runnable, error) {
	switch {
	case e.fixture != nil:
		switch len(rest) {
		case 0:
			return l.FromFixture(e.fixture)
		case 1:
			unit, err := l.bind(e.fixture, rest[0])
			if err != nil {
				return nil, err
			}
			return check.NewSuite(simpleName(e.fixture.Name), unit), nil
		default:
			return nil, &ResolutionError{Name: full, Segment: rest[1], Reason: "checks have no children"}
		}
	case e.runnable != nil:
		return walkRunnable(full, e.runnable, rest)
	default:
		if len(rest) > 0 {
			return nil, &ResolutionError{Name: full, Segment: rest[0], Reason: "factories have no children"}
		}
		item := e.factory()
		if item == nil {
			return nil, &ResolutionError{Name: full, Reason: "factory returned nil, not a test"}
		}
		return item, nil
	}
}

// walkRunnable follows the remaining dotted segments through nested
// suite name lookup.
func walkRunnable(full string, item check.Runnable, rest []string) (check.Runnable, error) {
	cur := item
	for _, seg := range rest {
		s, ok := cur.(*check.Suite)
		if !ok {
			return nil, &ResolutionError{Name: full, Segment: seg, Reason: "target has no children"}
		}
		child, ok := s.ChildByName(seg)
		if !ok {
			return nil, &ResolutionError{Name: full, Segment: seg, Reason: "no such child"}
		}
		cur = child
	}
	return cur, nil
}

// FromNames resolves each name independently and wraps the results in
// one outer suite, preserving input order.
func (l *Loader) FromNames(names []string) (*check.Suite, error) {
	suite := check.NewSuite("")
	for _, name := range names {
		item, err := l.FromName(name)
		if err != nil {
			return nil, err
		}
		suite.Add(item)
	}
	return suite, nil
}

func simpleName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
