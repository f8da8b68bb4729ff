package iqfall

import (
	"os"

	"github.com/iqfall/iqfall/radio"
)

// OpenIQR opens an iq8 recording, or stdin for "-", as a raw sample source.
func OpenIQR(path string) (*radio.IQReader, func(), error) {
	if path == "-" || path == "-.iq8" {
		return radio.NewIQReader(os.Stdin), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return radio.NewIQReader(f), func() { f.Close() }, nil
}
