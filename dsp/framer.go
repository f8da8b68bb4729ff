package dsp

import "github.com/iqfall/iqfall/radio"

// Framer accumulates raw samples into fixed-length frames and transforms
// each completed frame into a spectrum. Samples are discarded between
// frames so that frames come out at roughly frameHz even though the
// hardware delivers them at sampleHz. No window is applied before the
// transform.
type Framer struct {
	sampleHz uint32
	frameHz  uint32

	plan      PlanFunc
	transform Transform
	signal    []complex64
	discarded int
}

func NewFramer(sampleHz, frameHz uint32, frameLen int, plan PlanFunc) *Framer {
	if frameHz == 0 {
		panic("zero frame rate")
	}
	if plan == nil {
		plan = Plan
	}
	f := &Framer{sampleHz: sampleHz, frameHz: frameHz, plan: plan}
	f.SetFrameLen(frameLen)
	return f
}

func (f *Framer) FrameLen() int { return f.transform.Len() }

// SetFrameLen replaces the transform for the new length and resets
// accumulation; a partially-filled frame is discarded, never carried over.
func (f *Framer) SetFrameLen(n int) {
	if n <= 0 {
		panic("frame length must be positive")
	}
	if f.transform != nil {
		f.transform.Close()
	}
	f.transform = f.plan(n)
	f.signal = make([]complex64, 0, n)
	f.discarded = 0
}

// discardPerFrame is the number of samples skipped between frames. Clamped
// at zero when the target frame rate outpaces the sample rate.
func (f *Framer) discardPerFrame() int {
	d := (int64(f.sampleHz) - int64(f.frameHz)*int64(f.FrameLen())) / int64(f.frameHz)
	if d < 0 {
		return 0
	}
	return int(d)
}

// ProcessChunk feeds raw samples through the framer, returning a spectrum
// for every frame completed within the chunk.
func (f *Framer) ProcessChunk(samps []radio.IQ8) [][]complex64 {
	discard := f.discardPerFrame()
	var spectra [][]complex64
	for _, s := range samps {
		if f.discarded < discard {
			f.discarded++
			continue
		}
		f.signal = append(f.signal, s.Complex64())
		if len(f.signal) >= f.FrameLen() {
			spectrum := make([]complex64, f.FrameLen())
			f.transform.Process(f.signal, spectrum)
			f.signal = f.signal[:0]
			f.discarded = 0
			spectra = append(spectra, spectrum)
		}
	}
	return spectra
}

func (f *Framer) Close() {
	if f.transform != nil {
		f.transform.Close()
		f.transform = nil
	}
}
