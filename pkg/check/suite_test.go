package check

import "testing"

func unit(fixture, name string, body func(*T)) *Case {
	if body == nil {
		body = func(*T) {}
	}
	return NewCase(CaseConfig{Fixture: fixture, Check: name, Body: body})
}

func TestSuite_CountCases(t *testing.T) {
	inner := NewSuite("inner",
		unit("Fx", "TestA", nil),
		unit("Fx", "TestB", nil),
	)
	outer := NewSuite("outer",
		unit("Fx", "TestC", nil),
		inner,
		NewSuite("empty"),
	)

	if got := outer.CountCases(); got != 3 {
		t.Errorf("expected 3 cases, got %d", got)
	}

	inner.Add(unit("Fx", "TestD", nil))
	if got := outer.CountCases(); got != 4 {
		t.Errorf("expected 4 cases after mutation, got %d", got)
	}
}

func TestSuite_RunOrder(t *testing.T) {
	var order []string
	mk := func(name string) *Case {
		return unit("Fx", name, func(*T) { order = append(order, name) })
	}

	s := NewSuite("root",
		mk("TestB"),
		NewSuite("nested", mk("TestA")),
		mk("TestC"),
	)
	s.Run(NewResults())

	want := []string{"TestB", "TestA", "TestC"}
	if len(order) != len(want) {
		t.Fatalf("expected order %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], order[i])
		}
	}
}

func TestSuite_SharedCollector(t *testing.T) {
	s := NewSuite("root",
		unit("Fx", "TestPass", nil),
		NewSuite("nested",
			unit("Fx", "TestFail", func(ct *T) { ct.Fail("nope") }),
		),
	)

	col := NewResults()
	s.Run(col)

	if col.Runs() != 2 {
		t.Errorf("expected 2 runs, got %d", col.Runs())
	}
	if len(col.Failures()) != 1 {
		t.Errorf("expected 1 failure, got %d", len(col.Failures()))
	}
	if col.WasSuccessful() {
		t.Error("expected the run to be unsuccessful")
	}
}

func TestSuite_StopFlag(t *testing.T) {
	var ran []string
	mk := func(name string, interrupt bool) *Case {
		return unit("Fx", name, func(*T) {
			ran = append(ran, name)
			if interrupt {
				Interrupt("enough")
			}
		})
	}

	s := NewSuite("root",
		mk("TestFirst", false),
		mk("TestSecond", true),
		mk("TestThird", false),
	)
	col := NewResults()
	s.Run(col)

	if len(ran) != 2 || ran[1] != "TestSecond" {
		t.Errorf("expected the run to stop after TestSecond, ran %v", ran)
	}
	if col.Runs() != 2 {
		t.Errorf("expected 2 runs, got %d", col.Runs())
	}
}

func TestSuite_ChildByName(t *testing.T) {
	nested := NewSuite("nested", unit("Fx", "TestInner", nil))
	u := unit("Fx", "TestTop", nil)
	s := NewSuite("root", u, nested)

	got, ok := s.ChildByName("TestTop")
	if !ok || got != Runnable(u) {
		t.Errorf("expected the unit under its name, got %v (%v)", got, ok)
	}
	got, ok = s.ChildByName("nested")
	if !ok || got != Runnable(nested) {
		t.Errorf("expected the named nested suite, got %v (%v)", got, ok)
	}
	if _, ok := s.ChildByName("TestInner"); ok {
		t.Error("expected grandchildren to be unreachable by name")
	}
	if _, ok := s.ChildByName("missing"); ok {
		t.Error("expected a miss for an unknown name")
	}
}

func TestSuite_UnnamedNestedSuiteIndexedByType(t *testing.T) {
	anon := NewSuite("", unit("Fx", "TestInner", nil))
	s := NewSuite("root", anon)

	got, ok := s.ChildByName("check.Suite")
	if !ok || got != Runnable(anon) {
		t.Errorf("expected the anonymous suite under its type name, got %v (%v)", got, ok)
	}
}
