package load

import (
	"errors"
	"strings"
	"testing"

	"utest/pkg/check"
)

// OrderFixture declares its checks out of order on purpose; loading
// must sort them by name regardless of declaration order.
type OrderFixture struct{}

func (f *OrderFixture) TestB(t *check.T) {}
func (f *OrderFixture) TestA(t *check.T) {}
func (f *OrderFixture) TestC(t *check.T) {}

// not a check: wrong signature.
func (f *OrderFixture) TestHelper() {}

// not a check: no prefix.
func (f *OrderFixture) Prepare(t *check.T) {}

// LifecycleFixture records which of its hooks and checks ran.
type LifecycleFixture struct{}

var lifecycleLog []string

func (f *LifecycleFixture) SetUp() error {
	lifecycleLog = append(lifecycleLog, "setUp")
	return nil
}

func (f *LifecycleFixture) TearDown() error {
	lifecycleLog = append(lifecycleLog, "tearDown")
	return nil
}

func (f *LifecycleFixture) TestOne(t *check.T) {
	lifecycleLog = append(lifecycleLog, "one")
}

func (f *LifecycleFixture) TestTwo(t *check.T) {
	lifecycleLog = append(lifecycleLog, "two")
}

// BaseFixture is embedded by DerivedFixture below.
type BaseFixture struct{}

func (f *BaseFixture) TestInherited(t *check.T) {}
func (f *BaseFixture) TestShadowed(t *check.T)  { t.Fail("base version ran") }

// DerivedFixture inherits TestInherited and overrides TestShadowed.
type DerivedFixture struct {
	BaseFixture
}

func (f *DerivedFixture) TestShadowed(t *check.T) {}
func (f *DerivedFixture) TestOwn(t *check.T)      {}

func newTestRegistry() *Registry {
	reg := NewRegistry()
	reg.AddFixture("pkg.mod.OrderFixture", &OrderFixture{})
	reg.AddFixture("pkg.mod.LifecycleFixture", &LifecycleFixture{})
	reg.AddFixture("other.DerivedFixture", &DerivedFixture{})
	return reg
}

func suiteIDs(t *testing.T, item check.Runnable) []string {
	t.Helper()
	var ids []string
	var walk func(check.Runnable)
	walk = func(r check.Runnable) {
		switch v := r.(type) {
		case *check.Suite:
			for _, child := range v.Children() {
				walk(child)
			}
		case check.Unit:
			ids = append(ids, v.ID())
		default:
			t.Fatalf("unexpected runnable %T", r)
		}
	}
	walk(item)
	return ids
}

func TestLoader_CaseNames(t *testing.T) {
	l := NewLoader(newTestRegistry())

	got := l.CaseNames(&OrderFixture{})
	want := []string{"TestA", "TestB", "TestC"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLoader_CustomSort(t *testing.T) {
	l := NewLoader(newTestRegistry())
	l.SortNames = func(a, b string) int { return strings.Compare(b, a) }

	got := l.CaseNames(&OrderFixture{})
	want := []string{"TestC", "TestB", "TestA"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q (%v)", i, want[i], got[i], got)
		}
	}
}

func TestLoader_FromFixture(t *testing.T) {
	l := NewLoader(newTestRegistry())

	f := &Fixture{Name: "pkg.mod.OrderFixture", Proto: &OrderFixture{}}
	suite, err := l.FromFixture(f)
	if err != nil {
		t.Fatal(err)
	}

	if suite.Name() != "OrderFixture" {
		t.Errorf("expected suite name %q, got %q", "OrderFixture", suite.Name())
	}
	want := []string{
		"pkg.mod.OrderFixture.TestA",
		"pkg.mod.OrderFixture.TestB",
		"pkg.mod.OrderFixture.TestC",
	}
	got := suiteIDs(t, suite)
	if len(got) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLoader_LifecycleHooksAttached(t *testing.T) {
	l := NewLoader(newTestRegistry())
	lifecycleLog = nil

	suite, err := l.FromName("pkg.mod.LifecycleFixture")
	if err != nil {
		t.Fatal(err)
	}
	suite.Run(check.NewResults())

	want := []string{"setUp", "one", "tearDown", "setUp", "two", "tearDown"}
	if len(lifecycleLog) != len(want) {
		t.Fatalf("expected %v, got %v", want, lifecycleLog)
	}
	for i := range want {
		if lifecycleLog[i] != want[i] {
			t.Errorf("step %d: expected %q, got %q", i, want[i], lifecycleLog[i])
		}
	}
}

func TestLoader_FromName(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantIDs []string
	}{
		{
			name: "fixture",
			spec: "pkg.mod.OrderFixture",
			wantIDs: []string{
				"pkg.mod.OrderFixture.TestA",
				"pkg.mod.OrderFixture.TestB",
				"pkg.mod.OrderFixture.TestC",
			},
		},
		{
			name:    "single check",
			spec:    "pkg.mod.OrderFixture.TestB",
			wantIDs: []string{"pkg.mod.OrderFixture.TestB"},
		},
		{
			name: "namespace",
			spec: "pkg.mod",
			wantIDs: []string{
				"pkg.mod.LifecycleFixture.TestOne",
				"pkg.mod.LifecycleFixture.TestTwo",
				"pkg.mod.OrderFixture.TestA",
				"pkg.mod.OrderFixture.TestB",
				"pkg.mod.OrderFixture.TestC",
			},
		},
	}
	l := NewLoader(newTestRegistry())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := l.FromName(tt.spec)
			if err != nil {
				t.Fatal(err)
			}
			got := suiteIDs(t, item)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected ids %v, got %v", tt.wantIDs, got)
			}
			for i := range tt.wantIDs {
				if got[i] != tt.wantIDs[i] {
					t.Errorf("position %d: expected %q, got %q", i, tt.wantIDs[i], got[i])
				}
			}
		})
	}
}

func TestLoader_FromName_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "empty", spec: ""},
		{name: "unknown root", spec: "nowhere.Fixture"},
		{name: "unknown check", spec: "pkg.mod.OrderFixture.TestMissing"},
		{name: "below a check", spec: "pkg.mod.OrderFixture.TestA.deeper"},
	}
	l := NewLoader(newTestRegistry())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.FromName(tt.spec)
			if err == nil {
				t.Fatal("expected a resolution error")
			}
			var resErr *ResolutionError
			if !errors.As(err, &resErr) {
				t.Errorf("expected a ResolutionError, got %T: %v", err, err)
			}
		})
	}
}

func TestLoader_FromName_RegisteredSuite(t *testing.T) {
	reg := newTestRegistry()
	inner := check.NewSuite("inner",
		check.NewCase(check.CaseConfig{
			Fixture: "custom",
			Check:   "TestManual",
			Body:    func(*check.T) {},
		}),
	)
	reg.AddSuite("custom.suite", check.NewSuite("outer", inner))

	l := NewLoader(reg)

	item, err := l.FromName("custom.suite.inner.TestManual")
	if err != nil {
		t.Fatal(err)
	}
	u, ok := item.(check.Unit)
	if !ok || u.ID() != "custom.TestManual" {
		t.Errorf("expected the nested unit, got %T %v", item, item)
	}
}

func TestLoader_FromName_Factory(t *testing.T) {
	reg := newTestRegistry()
	reg.AddFactory("made.fresh", func() check.Runnable {
		return check.NewSuite("fresh",
			check.NewCase(check.CaseConfig{
				Fixture: "made", Check: "TestBuilt", Body: func(*check.T) {},
			}),
		)
	})
	reg.AddFactory("made.broken", func() check.Runnable { return nil })

	l := NewLoader(reg)

	item, err := l.FromName("made.fresh")
	if err != nil {
		t.Fatal(err)
	}
	if got := suiteIDs(t, item); len(got) != 1 || got[0] != "made.TestBuilt" {
		t.Errorf("expected the factory-built suite, got %v", got)
	}

	if _, err := l.FromName("made.broken"); err == nil {
		t.Error("expected a nil factory result to be an error")
	}
}

func TestLoader_LoadTwiceIsStructurallyEqual(t *testing.T) {
	l := NewLoader(newTestRegistry())

	first, err := l.FromName("pkg.mod.OrderFixture")
	if err != nil {
		t.Fatal(err)
	}
	second, err := l.FromName("pkg.mod.OrderFixture")
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Error("expected distinct suites from distinct loads")
	}
	a, b := suiteIDs(t, first), suiteIDs(t, second)
	if len(a) != len(b) {
		t.Fatalf("expected equal shapes, got %v and %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("position %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestLoader_EmbeddedFixture(t *testing.T) {
	l := NewLoader(newTestRegistry())

	got := l.CaseNames(&DerivedFixture{})
	want := []string{"TestInherited", "TestOwn", "TestShadowed"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	// The derived override must win over the embedded version.
	suite, err := l.FromName("other.DerivedFixture.TestShadowed")
	if err != nil {
		t.Fatal(err)
	}
	col := check.NewResults()
	suite.Run(col)
	if !col.WasSuccessful() {
		t.Errorf("expected the overriding check to run, got failures %v", col.Failures())
	}
}

func TestLoader_FromNames(t *testing.T) {
	l := NewLoader(newTestRegistry())

	suite, err := l.FromNames([]string{
		"pkg.mod.OrderFixture.TestC",
		"pkg.mod.LifecycleFixture",
	})
	if err != nil {
		t.Fatal(err)
	}

	got := suiteIDs(t, suite)
	want := []string{
		"pkg.mod.OrderFixture.TestC",
		"pkg.mod.LifecycleFixture.TestOne",
		"pkg.mod.LifecycleFixture.TestTwo",
	}
	if len(got) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if _, err := l.FromNames([]string{"pkg.mod.OrderFixture", "nowhere"}); err == nil {
		t.Error("expected one bad name to fail the whole resolution")
	}
}

func TestResolutionError_Error(t *testing.T) {
	e := &ResolutionError{Name: "a.b.c", Segment: "b", Reason: "no such child"}
	if !strings.Contains(e.Error(), `"a.b.c"`) || !strings.Contains(e.Error(), `"b"`) {
		t.Errorf("expected the name and segment in the message, got %q", e.Error())
	}
}
