package radio

import "fmt"

// HzBand is a tuned slice of spectrum.
type HzBand struct {
	Center uint64
	Width  uint64
}

func (b HzBand) BeginMHz() float64 {
	return (float64(b.Center) - float64(b.Width)/2.0) / 1e6
}

func (b HzBand) EndMHz() float64 {
	return (float64(b.Center) + float64(b.Width)/2.0) / 1e6
}

func (b HzBand) String() string {
	return fmt.Sprintf("[%0.5g,%0.5g]MHz", b.BeginMHz(), b.EndMHz())
}
