// Package load resolves dotted specifiers to runnable suites. Instead
// of chasing live namespaces at run time, programs register fixtures,
// suites and factories under fully-qualified names at startup; the
// loader then turns names into suites with a fixed set of composition
// rules and build-time reflection only.
package load

import (
	"fmt"
	"sort"
	"strings"

	"utest/pkg/check"
)

// Fixture is a registered fixture prototype plus its documentation.
// Proto must be a pointer to the zero value of the fixture struct; the
// loader creates a fresh instance per bound check.
type Fixture struct {
	Name      string
	Proto     interface{}
	Doc       string
	CheckDocs map[string]string
}

type entry struct {
	fixture  *Fixture
	runnable check.Runnable
	factory  func() check.Runnable
}

// Registry maps fully-qualified dotted names to construction targets.
// Registration order is irrelevant; enumeration is always name-sorted
// so runs are reproducible.
type Registry struct {
	entries map[string]*entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]*entry{}}
}

// FixtureOption customizes a fixture registration.
type FixtureOption func(*Fixture)

// WithDoc attaches fixture-level documentation: first line becomes the
// description prefix of every check, the remainder the fixture part of
// the explanation.
func WithDoc(doc string) FixtureOption {
	return func(f *Fixture) { f.Doc = doc }
}

// WithCheckDoc attaches documentation to one named check.
func WithCheckDoc(checkName, doc string) FixtureOption {
	return func(f *Fixture) { f.CheckDocs[checkName] = doc }
}

// AddFixture registers a fixture prototype under name.
func (r *Registry) AddFixture(name string, proto interface{}, opts ...FixtureOption) {
	f := &Fixture{Name: name, Proto: proto, CheckDocs: map[string]string{}}
	for _, opt := range opts {
		opt(f)
	}
	r.entries[name] = &entry{fixture: f}
}

// AddSuite registers a pre-built suite or unit under name.
func (r *Registry) AddSuite(name string, item check.Runnable) {
	r.entries[name] = &entry{runnable: item}
}

// AddFactory registers a callable that builds a runnable on demand.
// Resolution invokes it with zero arguments and requires a non-nil
// result.
func (r *Registry) AddFactory(name string, fn func() check.Runnable) {
	r.entries[name] = &entry{factory: fn}
}

func (r *Registry) lookup(name string) (*entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// hasNamespace reports whether any entry is registered strictly below
// ns.
func (r *Registry) hasNamespace(ns string) bool {
	prefix := ns + "."
	for name := range r.entries {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// fixturesUnder returns the fixtures registered strictly below ns,
// sorted by name. An empty ns selects every registered fixture.
func (r *Registry) fixturesUnder(ns string) []*Fixture {
	prefix := ""
	if ns != "" {
		prefix = ns + "."
	}
	var names []string
	for name, e := range r.entries {
		if e.fixture != nil && strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([]*Fixture, 0, len(names))
	for _, name := range names {
		out = append(out, r.entries[name].fixture)
	}
	return out
}

// ResolutionError reports a dotted specifier that cannot be mapped to
// any known target. It is fatal to an invocation: a misnamed specifier
// is a configuration mistake, not a test outcome.
type ResolutionError struct {
	Name    string
	Segment string
	Reason  string
}

func (e *ResolutionError) Error() string {
	if e.Segment != "" && e.Segment != e.Name {
		return fmt.Sprintf("cannot resolve %q: %s at %q", e.Name, e.Reason, e.Segment)
	}
	return fmt.Sprintf("cannot resolve %q: %s", e.Name, e.Reason)
}
