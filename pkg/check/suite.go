package check

import (
	"fmt"
	"strings"
)

// Suite is an ordered composite of units and nested suites. Insertion
// order is execution order. Direct children are additionally indexed
// under a derived name so a nested item can be addressed without
// walking the tree.
type Suite struct {
	name   string
	items  []Runnable
	byName map[string]Runnable
}

// NewSuite returns a suite with the given name (which may be empty)
// and initial items.
func NewSuite(name string, items ...Runnable) *Suite {
	s := &Suite{name: name, byName: map[string]Runnable{}}
	s.AddAll(items...)
	return s
}

// Name returns the suite's reporting name, empty if none was given.
func (s *Suite) Name() string { return s.name }

// Children returns the direct children in insertion order.
func (s *Suite) Children() []Runnable { return s.items }

// Add appends one runnable and indexes it under its derived name: a
// named nested suite under its name, a unit under its discriminator,
// anything else under its type name.
func (s *Suite) Add(item Runnable) {
	s.items = append(s.items, item)
	s.byName[childName(item)] = item
}

// AddAll appends the items in order.
func (s *Suite) AddAll(items ...Runnable) {
	for _, item := range items {
		s.Add(item)
	}
}

// ChildByName retrieves a direct child by its derived name.
func (s *Suite) ChildByName(name string) (Runnable, bool) {
	item, ok := s.byName[name]
	return item, ok
}

func childName(item Runnable) string {
	switch v := item.(type) {
	case *Suite:
		if v.name != "" {
			return v.name
		}
	case Unit:
		return v.Name()
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", item), "*")
}

// Run executes the children in insertion order against c, checking the
// stop flag before each child so a stop request takes effect at the
// next unit boundary. Nested suites share the same collector, so their
// results flatten into one tally.
func (s *Suite) Run(c Collector) {
	for _, item := range s.items {
		if c.ShouldStop() {
			return
		}
		item.Run(c)
	}
}

// CountCases sums the children's case counts recursively. The count is
// computed fresh on every call so it reflects later mutation.
func (s *Suite) CountCases() int {
	n := 0
	for _, item := range s.items {
		n += item.CountCases()
	}
	return n
}
