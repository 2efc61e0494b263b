package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestEnsureLenGrow(t *testing.T) {
	out := EnsureLen(nil, 3)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
}

func TestEnsureLenNonPositive(t *testing.T) {
	buf := []float64{1, 2}
	if out := EnsureLen(buf, 0); len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
	if out := EnsureLen(nil, -1); len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}
