package engine

import "testing"

func TestPoolInsertFillsSlotsInOrder(t *testing.T) {
	p := NewPool[int](3)

	for want := 0; want < 3; want++ {
		idx, ok := p.TryInsert(want * 10)
		if !ok {
			t.Fatalf("insert %d rejected", want)
		}
		if idx != want {
			t.Errorf("insert %d landed in slot %d", want, idx)
		}
	}
	if !p.Full() {
		t.Error("pool should be full")
	}
	if _, ok := p.TryInsert(99); ok {
		t.Error("insert into full pool should be rejected")
	}
	if p.Len() != 3 {
		t.Errorf("Len = %d, want 3", p.Len())
	}
}

func TestPoolDeactivateReusesSlot(t *testing.T) {
	p := NewPool[int](3)
	p.TryInsert(1)
	p.TryInsert(2)
	p.TryInsert(3)

	p.Deactivate(1)
	p.Deactivate(1) // second release is ignored
	if p.Len() != 2 {
		t.Fatalf("Len = %d, want 2", p.Len())
	}
	if p.Active(1) {
		t.Error("slot 1 should be inactive")
	}

	idx, ok := p.TryInsert(4)
	if !ok || idx != 1 {
		t.Errorf("TryInsert = (%d, %v), want (1, true)", idx, ok)
	}
}

func TestPoolNthIsCompact(t *testing.T) {
	p := NewPool[string](4)
	p.TryInsert("a")
	p.TryInsert("b")
	p.TryInsert("c")
	p.Deactivate(0)

	tests := []struct {
		n    int
		want string
		ok   bool
	}{
		{0, "b", true},
		{1, "c", true},
		{2, "", false},
		{-1, "", false},
	}
	for _, tt := range tests {
		got, ok := p.Nth(tt.n)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Nth(%d) = (%q, %v), want (%q, %v)", tt.n, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPoolEachAllowsDeactivation(t *testing.T) {
	p := NewPool[int](5)
	for i := 0; i < 5; i++ {
		p.TryInsert(i)
	}

	p.Each(func(idx int, v *int) bool {
		if *v%2 == 0 {
			p.Deactivate(idx)
		}
		return true
	})

	got := p.Values()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Values = %v, want [1 3]", got)
	}
}

func TestPoolEachStopsEarly(t *testing.T) {
	p := NewPool[int](5)
	for i := 0; i < 5; i++ {
		p.TryInsert(i)
	}

	visited := 0
	p.Each(func(_ int, _ *int) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("visited %d slots, want 2", visited)
	}
}

func TestPoolClear(t *testing.T) {
	p := NewPool[int](3)
	p.TryInsert(1)
	p.TryInsert(2)
	p.Deactivate(0)

	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len after Clear = %d", p.Len())
	}
	if p.Slot(1) != nil {
		t.Error("Slot(1) should be nil after Clear")
	}
	idx, _ := p.TryInsert(7)
	if idx != 0 {
		t.Errorf("first insert after Clear went to slot %d, want 0", idx)
	}
}
