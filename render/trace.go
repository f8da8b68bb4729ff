package render

import (
	"math"
	"math/cmplx"
)

// fftShift reorders a trace so the zero-frequency bin lands in the center.
// For odd lengths the split point is (N+1)/2, putting DC exactly at N/2.
func fftShift(trace []float64) {
	split := (len(trace) + 1) / 2
	shifted := make([]float64, 0, len(trace))
	shifted = append(shifted, trace[split:]...)
	shifted = append(shifted, trace[:split]...)
	copy(trace, shifted)
}

// Normalize converts a spectrum into centered per-bin intensities on a log
// scale referenced to maxDB. Values are not clamped here; clamping happens
// at draw time.
func Normalize(spectrum []complex64, maxDB float64) []float64 {
	trace := make([]float64, len(spectrum))
	for i, v := range spectrum {
		trace[i] = 10.0 * math.Log10(cmplx.Abs(complex128(v))) / maxDB
	}
	fftShift(trace)
	return trace
}

// binAverage downsamples a trace into bins by averaging equal-size groups;
// a final partial group is averaged over its remaining elements. Groups
// past the end of the trace stay zero.
func binAverage(trace []float64, bins int) []float64 {
	out := make([]float64, bins)
	if bins <= 0 || len(trace) == 0 {
		return out
	}
	size := (len(trace) + bins - 1) / bins
	for i := range out {
		lo := i * size
		if lo >= len(trace) {
			break
		}
		hi := lo + size
		if hi > len(trace) {
			hi = len(trace)
		}
		sum := 0.0
		for _, v := range trace[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
