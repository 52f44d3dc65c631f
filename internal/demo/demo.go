// Package demo registers the example fixtures that ship with the
// utest binary. They double as living documentation of the fixture
// conventions: exported Test-prefixed methods taking *check.T, with
// optional SetUp/TearDown.
package demo

import (
	"errors"
	"strings"

	"utest/pkg/check"
	"utest/pkg/load"
)

// StringChecks exercises the strings package.
type StringChecks struct {
	input string
}

// SetUp prepares the shared input for each check.
func (c *StringChecks) SetUp() error {
	c.input = "utest"
	return nil
}

func (c *StringChecks) TestUpper(t *check.T) {
	t.FailUnlessEqual(strings.ToUpper(c.input), "UTEST")
}

func (c *StringChecks) TestFields(t *check.T) {
	t.FailUnlessEqual(strings.Fields("a b  c"), []string{"a", "b", "c"})
}

func (c *StringChecks) TestContains(t *check.T) {
	t.FailUnless(strings.Contains(c.input, "test"), "expected substring")
}

// MathChecks exercises the numeric assertion helpers.
type MathChecks struct{}

func (c *MathChecks) TestAlmostEqual(t *check.T) {
	t.FailUnlessAlmostEqual(1.0/3.0, 0.3333333, 6)
}

func (c *MathChecks) TestNotAlmostEqual(t *check.T) {
	t.FailIfAlmostEqual(1.0/3.0, 0.34, 2)
}

var errDemo = errors.New("demo error")

func (c *MathChecks) TestRaises(t *check.T) {
	t.FailUnlessRaises(errDemo, func() error { return errDemo })
}

// Register adds the demo fixtures to reg under the demo namespace.
func Register(reg *load.Registry) {
	reg.AddFixture("demo.StringChecks", &StringChecks{},
		load.WithDoc("String helpers behave as documented.\n"+
			"These checks cover the subset of the strings package the\n"+
			"examples in the README rely on."),
		load.WithCheckDoc("TestUpper", "ToUpper uppercases ASCII."),
		load.WithCheckDoc("TestFields", "Fields splits on runs of spaces."),
	)
	reg.AddFixture("demo.MathChecks", &MathChecks{},
		load.WithDoc("Numeric assertion helpers."),
	)
}
