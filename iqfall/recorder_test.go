package iqfall

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iqfall/iqfall/radio"
)

func TestRecorderPassthrough(t *testing.T) {
	r := &Recorder{}
	inc := make(chan []radio.IQ8, 1)
	outc := r.Chan(inc)
	inc <- tagged(4, 7)
	if samps := <-outc; len(samps) != 4 || samps[0].I != 7 {
		t.Fatalf("chunk not forwarded intact: %+v", samps)
	}
	close(inc)
	if _, ok := <-outc; ok {
		t.Fatal("expected closed output")
	}
}

func TestRecorderToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.iq8")
	r := &Recorder{}
	inc := make(chan []radio.IQ8, 2)
	outc := r.Chan(inc)

	inc <- tagged(4, 1)
	<-outc

	on, err := r.Toggle(path)
	if err != nil {
		t.Fatal(err)
	}
	if !on {
		t.Fatal("expected recording to start")
	}
	inc <- tagged(4, 2)
	<-outc
	if on, _ = r.Toggle(path); on {
		t.Fatal("expected recording to stop")
	}

	inc <- tagged(4, 3)
	<-outc
	close(inc)
	for range outc {
	}

	// Only the chunk sent while recording lands in the file.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 8 {
		t.Fatalf("expected 8 recorded bytes, got %d", len(data))
	}
	if data[0] != 2+128 {
		t.Fatalf("expected recorded I of 0x%x, got 0x%x", 2+128, data[0])
	}
}
