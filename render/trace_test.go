package render

import (
	"math"
	"testing"
)

func TestFFTShiftDC(t *testing.T) {
	for _, n := range []int{8, 9} {
		trace := make([]float64, n)
		trace[0] = 1
		fftShift(trace)
		if trace[n/2] != 1 {
			t.Fatalf("len %d: DC bin not centered: %v", n, trace)
		}
	}
}

func TestFFTShiftEven(t *testing.T) {
	trace := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	fftShift(trace)
	expected := []float64{5, 6, 7, 8, 9, 0, 1, 2, 3, 4}
	for i := range expected {
		if trace[i] != expected[i] {
			t.Fatalf("bin %d: expected %v, got %v", i, expected[i], trace[i])
		}
	}
	// Shifting an even-length trace twice restores the original.
	fftShift(trace)
	for i := range trace {
		if trace[i] != float64(i) {
			t.Fatalf("double shift not identity at %d: %v", i, trace)
		}
	}
}

func TestFFTShiftOdd(t *testing.T) {
	trace := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	fftShift(trace)
	// Split point (N+1)/2 puts bin 5 first.
	expected := []float64{5, 6, 7, 8, 0, 1, 2, 3, 4}
	for i := range expected {
		if trace[i] != expected[i] {
			t.Fatalf("bin %d: expected %v, got %v", i, expected[i], trace[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	spectrum := make([]complex64, 8)
	for i := range spectrum {
		spectrum[i] = 1 // 0dB
	}
	spectrum[0] = 10 // 10dB
	trace := Normalize(spectrum, 50.0)
	if len(trace) != len(spectrum) {
		t.Fatalf("expected %d bins, got %d", len(spectrum), len(trace))
	}
	for i, v := range trace {
		expected := 0.0
		if i == 4 { // DC centered
			expected = 0.2
		}
		if math.Abs(v-expected) > 1e-6 {
			t.Fatalf("bin %d: expected %v, got %v", i, expected, v)
		}
	}
}

func TestBinAverage(t *testing.T) {
	trace := []float64{1, 1, 2, 2, 3, 3, 4, 4, 5, 5}
	got := binAverage(trace, 4)
	// Groups of ceil(10/4)=3 with a ragged final group of one.
	expected := []float64{4.0 / 3.0, 8.0 / 3.0, 13.0 / 3.0, 5}
	for i := range expected {
		if math.Abs(got[i]-expected[i]) > 1e-9 {
			t.Fatalf("bin %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}

func TestBinAverageShortTrace(t *testing.T) {
	got := binAverage([]float64{7}, 4)
	if got[0] != 7 {
		t.Fatalf("expected first bin 7, got %v", got[0])
	}
	for i, v := range got[1:] {
		if v != 0 {
			t.Fatalf("bin %d: expected 0 for missing data, got %v", i+1, v)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, out float64 }{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
		{math.Inf(-1), 0},
		{math.Inf(1), 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.out {
			t.Errorf("clamp01(%v) = %v, expected %v", tt.in, got, tt.out)
		}
	}
}
