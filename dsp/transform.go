package dsp

import "github.com/runningwild/go-fftw/fftw32"

// Transform computes a fixed-length DFT.
type Transform interface {
	Len() int
	// Process transforms in into out; both must hold Len() elements.
	Process(in, out []complex64)
	Close()
}

// PlanFunc builds a Transform for a given frame length.
type PlanFunc func(n int) Transform

type fftwTransform struct {
	in   *fftw32.Array
	out  *fftw32.Array
	plan *fftw32.Plan
}

// Plan prepares an FFTW forward transform of length n.
func Plan(n int) Transform {
	in, out := fftw32.NewArray(n), fftw32.NewArray(n)
	return &fftwTransform{
		in:   in,
		out:  out,
		plan: fftw32.NewPlan(in, out, fftw32.Forward, fftw32.Estimate),
	}
}

func (t *fftwTransform) Len() int { return len(t.in.Elems) }

func (t *fftwTransform) Process(in, out []complex64) {
	copy(t.in.Elems, in)
	t.plan.Execute()
	copy(out, t.out.Elems)
}

func (t *fftwTransform) Close() { t.plan.Destroy() }
