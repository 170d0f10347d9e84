package slotmap

import "testing"

func TestNewAllUnresolved(t *testing.T) {
	m := New[int, string](1, 2, 3)
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	if len(m.Resolved()) != 0 {
		t.Fatalf("Resolved() = %v, want empty", m.Resolved())
	}
}

func TestSetDecrementsRemaining(t *testing.T) {
	m := New[int, string](1, 2, 3)
	m.Set(2, "fact")
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	occ, ok := m.Get(2)
	if !ok || occ != "fact" {
		t.Fatalf("Get(2) = (%q, %v), want (\"fact\", true)", occ, ok)
	}
}

func TestSetTwiceOnSameKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on double Set")
		}
	}()
	m := New[int, string](1)
	m.Set(1, "a")
	m.Set(1, "b")
}

func TestSoleRequiresRemainingOne(t *testing.T) {
	m := New[int, string](1, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when remaining != 1")
		}
	}()
	m.Sole()
}

func TestSoleReturnsLastUnresolvedKey(t *testing.T) {
	m := New[int, string](1, 2, 3)
	m.Set(1, "a")
	m.Set(2, "b")
	if got := m.Sole(); got != 3 {
		t.Fatalf("Sole() = %d, want 3", got)
	}
}

func TestResolvedOrderMatchesKeyOrder(t *testing.T) {
	m := New[int, string](5, 3, 1)
	m.Set(5, "five")
	m.Set(1, "one")
	got := m.Resolved()
	want := []string{"five", "one"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Resolved() = %v, want %v", got, want)
	}
}
