package radio

import (
	"context"
	"io"
)

// IQ8 is one raw receiver sample: a pair of small signed integers.
type IQ8 struct {
	I int8
	Q int8
}

// Complex64 scales the sample into the unit square.
func (s IQ8) Complex64() complex64 {
	return complex(float32(s.I)/128.0, float32(s.Q)/128.0)
}

// IQReader decodes interleaved 8-bit I/Q off a stream. The wire format is
// offset binary as produced by rtl_tcp and iq8 recordings: 0x80 is zero.
type IQReader struct {
	r   io.Reader
	err error
}

func NewIQReader(r io.Reader) *IQReader {
	if r == nil {
		panic("nil reader")
	}
	return &IQReader{r: r}
}

func (iq *IQReader) Err() error { return iq.err }

// Batch reads sample chunks until read failure or limit batches, if non-zero.
func (iq *IQReader) Batch(batch, limit int) <-chan []IQ8 {
	return iq.BatchStream(context.Background(), batch, limit)
}

// BatchStream reads batch-sized sample chunks into a channel owned by the
// reader goroutine. The channel closes on read failure, limit, or ctx done.
func (iq *IQReader) BatchStream(ctx context.Context, batch, limit int) <-chan []IQ8 {
	ch := make(chan []IQ8, 1)
	go func() {
		defer close(ch)
		buf := make([]byte, batch*2)
		for i := 0; limit <= 0 || i < limit; i++ {
			if _, iq.err = io.ReadFull(iq.r, buf); iq.err != nil {
				return
			}
			samps := make([]IQ8, batch)
			for j := range samps {
				samps[j] = IQ8{
					I: int8(buf[2*j] - 128),
					Q: int8(buf[2*j+1] - 128),
				}
			}
			select {
			case ch <- samps:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

type IQWriter struct{ w io.Writer }

func NewIQWriter(w io.Writer) *IQWriter { return &IQWriter{w} }

func (iq *IQWriter) Write(out []IQ8) error {
	buf := make([]byte, 2*len(out))
	for i, s := range out {
		buf[2*i] = byte(s.I) + 128
		buf[2*i+1] = byte(s.Q) + 128
	}
	_, err := iq.w.Write(buf)
	return err
}
