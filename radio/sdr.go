package radio

import (
	"context"
	"errors"
	"os/exec"
	"sync"
)

var ErrRateOutOfRange = errors.New("sample rate out of range")
var ErrFrequencyOutOfRange = errors.New("frequency out of range")

// SDR is a streaming radio receiver.
type SDR interface {
	SetFrequency(hz uint64) error
	SetSampleRate(hz uint32) error
	// StartRx begins streaming raw sample chunks. The returned channel is
	// owned by the device and closes when the stream ends or ctx is done.
	StartRx(ctx context.Context) (<-chan []IQ8, error)
	StopRx() error
	Info() SDRHWInfo
	Close() error
}

type SDRHWInfo struct {
	Id       string
	Band     HzBand
	BitDepth uint

	MinHz         uint64
	MaxHz         uint64
	MinSampleRate uint32
	MaxSampleRate uint32
}

var (
	initOnce sync.Once
	initErr  error

	devmu   sync.Mutex
	devices map[SDR]struct{}
)

// Init prepares the driver backend. Call once at process startup, before
// any Open; pair with Exit at orderly shutdown.
func Init() error {
	initOnce.Do(func() {
		_, initErr = exec.LookPath("rtl_tcp")
		devices = make(map[SDR]struct{})
	})
	return initErr
}

// Exit closes any devices still open.
func Exit() {
	devmu.Lock()
	open := make([]SDR, 0, len(devices))
	for s := range devices {
		open = append(open, s)
	}
	devices = make(map[SDR]struct{})
	devmu.Unlock()
	for _, s := range open {
		s.Close()
	}
}

// Open attaches to the receiver with the given serial number or device index.
func Open(ctx context.Context, serial string) (SDR, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	s, err := openRTLSDR(ctx, serial)
	if err != nil {
		return nil, err
	}
	devmu.Lock()
	devices[s] = struct{}{}
	devmu.Unlock()
	return s, nil
}

func forget(s SDR) {
	devmu.Lock()
	delete(devices, s)
	devmu.Unlock()
}
