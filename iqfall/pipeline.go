package iqfall

import (
	"sync"

	"github.com/iqfall/iqfall/dsp"
	"github.com/iqfall/iqfall/radio"
)

// FrameConfig is the requested frame length shared between the render loop
// and the framer stage. It is read once per chunk and written on resize, so
// eventual visibility is all that is needed; a frame or two of delay before
// a new length takes hold is fine.
type FrameConfig struct {
	mu       sync.Mutex
	frameLen int
}

func NewFrameConfig(frameLen int) *FrameConfig {
	return &FrameConfig{frameLen: frameLen}
}

func (fc *FrameConfig) Set(frameLen int) {
	if frameLen <= 0 {
		return
	}
	fc.mu.Lock()
	fc.frameLen = frameLen
	fc.mu.Unlock()
}

func (fc *FrameConfig) Get() int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.frameLen
}

// SpectraChan runs the framer stage over a raw sample stream. Spectra are
// handed off through a capacity-1 channel: when the renderer is still
// drawing, a newly produced spectrum replaces the undelivered one instead
// of queueing, so the sender never blocks and latency stays bounded.
// Closing the input cascades: the output channel closes when the stage ends.
func SpectraChan(inc <-chan []radio.IQ8, cfg *FrameConfig, sampleHz, frameHz uint32, plan dsp.PlanFunc) <-chan []complex64 {
	outc := make(chan []complex64, 1)
	go func() {
		defer close(outc)
		f := dsp.NewFramer(sampleHz, frameHz, cfg.Get(), plan)
		defer f.Close()
		for samps := range inc {
			// Reconfiguration lands on chunk boundaries only.
			if n := cfg.Get(); n != f.FrameLen() {
				f.SetFrameLen(n)
			}
			for _, spectrum := range f.ProcessChunk(samps) {
				trySend(outc, spectrum)
			}
		}
	}()
	return outc
}

func trySend(outc chan []complex64, spectrum []complex64) {
	select {
	case outc <- spectrum:
		return
	default:
	}
	// Evict the stale frame, then offer the fresh one again. The receiver
	// may have raced in between; losing that race just drops this frame.
	select {
	case <-outc:
	default:
	}
	select {
	case outc <- spectrum:
	default:
	}
}
