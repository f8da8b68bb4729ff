package iqfall

import (
	"log"
	"os"
	"sync"

	"github.com/iqfall/iqfall/radio"
)

// Recorder forwards raw sample chunks downstream while optionally mirroring
// them to an iq8 file.
type Recorder struct {
	mu   sync.Mutex
	f    *os.File
	iqw  *radio.IQWriter
	path string
}

// Chan inserts the recorder between a sample source and its consumer.
func (r *Recorder) Chan(inc <-chan []radio.IQ8) <-chan []radio.IQ8 {
	outc := make(chan []radio.IQ8, 1)
	go func() {
		defer close(outc)
		defer r.Stop()
		for samps := range inc {
			r.write(samps)
			outc <- samps
		}
	}()
	return outc
}

func (r *Recorder) write(samps []radio.IQ8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.iqw == nil {
		return
	}
	if err := r.iqw.Write(samps); err != nil {
		log.Println("failed to write", r.path, err)
		r.stopLocked()
	}
}

// Toggle starts recording to path, or stops a recording in progress.
// It reports whether recording is active afterwards.
func (r *Recorder) Toggle(path string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.f != nil {
		r.stopLocked()
		return false, nil
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return false, err
	}
	r.f, r.iqw, r.path = f, radio.NewIQWriter(f), path
	log.Println("start writing", path)
	return true, nil
}

func (r *Recorder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *Recorder) stopLocked() {
	if r.f == nil {
		return
	}
	log.Println("stop writing", r.path)
	r.f.Close()
	r.f, r.iqw = nil, nil
}
