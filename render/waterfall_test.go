package render

import "testing"

func trace(v float64) []float64 { return []float64{v} }

func TestHistoryBounded(t *testing.T) {
	h := NewHistory(4)
	for i := 0; i < 10; i++ {
		h.Push(trace(float64(i)))
		if h.Len() > h.Cap() {
			t.Fatalf("history grew to %d past capacity %d", h.Len(), h.Cap())
		}
	}
	if h.Len() != 4 {
		t.Fatalf("expected full history of 4, got %d", h.Len())
	}
	// Newest first: 9, 8, 7, 6. Everything older was evicted.
	for i := 0; i < 4; i++ {
		if v := h.At(i)[0]; v != float64(9-i) {
			t.Fatalf("entry %d: expected %v, got %v", i, float64(9-i), v)
		}
	}
	if h.At(4) != nil {
		t.Fatal("expected nil past the last retained entry")
	}
}

func TestHistoryEvictsFirstInserted(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i <= 3; i++ {
		h.Push(trace(float64(i)))
	}
	for i := 0; i < h.Len(); i++ {
		if h.At(i)[0] == 0 {
			t.Fatal("first-inserted trace still retrievable after capacity+1 pushes")
		}
	}
}

func TestHistoryResize(t *testing.T) {
	h := NewHistory(6)
	for i := 0; i < 6; i++ {
		h.Push(trace(float64(i)))
	}
	h.Resize(2)
	if h.Len() != 2 {
		t.Fatalf("expected 2 entries after shrink, got %d", h.Len())
	}
	if h.At(0)[0] != 5 || h.At(1)[0] != 4 {
		t.Fatalf("shrink dropped newest entries: %v %v", h.At(0), h.At(1))
	}
	h.Resize(4)
	h.Push(trace(6))
	h.Push(trace(7))
	h.Push(trace(8))
	if h.Len() != 4 {
		t.Fatalf("expected regrown history of 4, got %d", h.Len())
	}
}

func TestHistoryZeroCapacity(t *testing.T) {
	h := NewHistory(0)
	h.Push(trace(1))
	if h.Len() != 0 {
		t.Fatalf("zero-capacity history retained %d entries", h.Len())
	}
}
