package radio

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/kr/pty"
)

var minFreqHz = uint64(25000000)
var maxFreqHz = uint64(1750000000)
var minRate = uint32(225000)
var maxRate = uint32(3200000)

const rtlAddr = "127.0.0.1:12345"

// rxChunkSamples matches the rtl_tcp transfer buffer.
const rxChunkSamples = 16384

type rtlSDR struct {
	conn *rtlConn
	cmd  *exec.Cmd
	fpty *os.File
	// device serial number or device index
	serialNumber string

	center uint64
	rate   uint32

	rxCancel context.CancelFunc

	mu sync.Mutex
}

func openRTLSDR(ctx context.Context, ser string) (*rtlSDR, error) {
	// TODO: support different ports
	cmd := exec.CommandContext(ctx, "rtl_tcp", "-a", "127.0.0.1", "-p", "12345", "-d", ser, "-s", "240000")
	fpty, err := pty.Start(cmd)
	if err != nil {
		return nil, err
	}
	// Drain daemon output so it never blocks on a full pty; the terminal
	// belongs to the renderer.
	go io.Copy(io.Discard, fpty)
	select {
	case <-time.After(2 * time.Second):
	case <-ctx.Done():
		fpty.Close()
		cmd.Wait()
		return nil, ctx.Err()
	}
	s := &rtlSDR{fpty: fpty, cmd: cmd, serialNumber: ser}
	if s.conn, err = connect(ctx); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.conn.setGainMode(true); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func connect(ctx context.Context) (*rtlConn, error) {
	addr, err := net.ResolveTCPAddr("tcp4", rtlAddr)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 10; i++ {
		c, err := dialRTL(addr)
		if err == nil {
			return c, nil
		}
		log.Println(err)
		select {
		case <-time.After(100 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("no rtl_tcp at %s", rtlAddr)
}

func (s *rtlSDR) SetFrequency(hz uint64) error {
	if hz < minFreqHz || hz > maxFreqHz {
		return ErrFrequencyOutOfRange
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.center == hz {
		return nil
	}
	if err := s.conn.setCenterFreq(uint32(hz)); err != nil {
		return err
	}
	s.center = hz
	return nil
}

func isValidRate(rate uint32) bool {
	return !((rate <= 225000) || (rate > 3200000) ||
		((rate > 300000) && (rate <= 900000)))
}

func (s *rtlSDR) SetSampleRate(rate uint32) error {
	if !isValidRate(rate) {
		return ErrRateOutOfRange
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rate == rate {
		return nil
	}
	if err := s.conn.setSampleRate(rate); err != nil {
		return err
	}
	s.rate = rate
	return nil
}

// StartRx hands the connection to an owned reader goroutine; the returned
// channel is the only handle on the stream.
func (s *rtlSDR) StartRx(ctx context.Context) (<-chan []IQ8, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rxCancel != nil {
		return nil, fmt.Errorf("rx already started")
	}
	rctx, cancel := context.WithCancel(ctx)
	s.rxCancel = cancel
	return NewIQReader(s.conn).BatchStream(rctx, rxChunkSamples, 0), nil
}

func (s *rtlSDR) StopRx() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rxCancel == nil {
		return nil
	}
	s.rxCancel()
	s.rxCancel = nil
	return nil
}

func (s *rtlSDR) Info() SDRHWInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SDRHWInfo{
		Id:            s.serialNumber,
		Band:          HzBand{Center: s.center, Width: uint64(s.rate)},
		BitDepth:      8,
		MinHz:         minFreqHz,
		MaxHz:         maxFreqHz,
		MinSampleRate: minRate,
		MaxSampleRate: maxRate,
	}
}

func (s *rtlSDR) Close() error {
	s.StopRx()
	forget(s)
	if s.conn != nil {
		s.conn.Close()
	}
	s.fpty.Close()
	return s.cmd.Wait()
}
