package radio

import (
	"encoding/binary"
	"fmt"
	"net"
)

var dongleMagic = [...]byte{'R', 'T', 'L', '0'}

// rtlConn speaks the rtl_tcp control protocol. IQ samples are read straight
// off the embedded connection.
type rtlConn struct {
	*net.TCPConn
	info dongleInfo
}

// dongleInfo is the header rtl_tcp sends on connect.
type dongleInfo struct {
	Magic     [4]byte
	Tuner     uint32
	GainCount uint32
}

func (d dongleInfo) valid() bool { return d.Magic == dongleMagic }

func dialRTL(addr *net.TCPAddr) (c *rtlConn, err error) {
	c = &rtlConn{}
	if c.TCPConn, err = net.DialTCP("tcp", nil, addr); err != nil {
		return nil, fmt.Errorf("connecting to rtl_tcp: %w", err)
	}
	defer func() {
		if err != nil {
			c.Close()
		}
	}()
	if err = binary.Read(c.TCPConn, binary.BigEndian, &c.info); err != nil {
		return nil, fmt.Errorf("reading dongle information: %w", err)
	}
	if !c.info.valid() {
		return nil, fmt.Errorf("bad magic number: %q", c.info.Magic)
	}
	return c, nil
}

type command struct {
	Command   uint8
	Parameter uint32
}

// Command constants defined in rtl_tcp.c.
const (
	cmdCenterFreq = iota + 1
	cmdSampleRate
	cmdTunerGainMode
	cmdTunerGain
	cmdFreqCorrection
	_ // tuner IF gain
	_ // test mode
	cmdAGCMode
)

func (c *rtlConn) do(cmd uint8, v uint32) error {
	return binary.Write(c.TCPConn, binary.BigEndian, command{cmd, v})
}

func (c *rtlConn) setCenterFreq(hz uint32) error { return c.do(cmdCenterFreq, hz) }

func (c *rtlConn) setSampleRate(hz uint32) error { return c.do(cmdSampleRate, hz) }

// setGainMode true selects hardware automatic gain.
func (c *rtlConn) setGainMode(auto bool) error {
	if auto {
		return c.do(cmdTunerGainMode, 0)
	}
	return c.do(cmdTunerGainMode, 1)
}

func (c *rtlConn) setAGCMode(on bool) error {
	if on {
		return c.do(cmdAGCMode, 1)
	}
	return c.do(cmdAGCMode, 0)
}

func (c *rtlConn) setFreqCorrection(ppm uint32) error { return c.do(cmdFreqCorrection, ppm) }
