package radio

import "testing"

func TestValidRates(t *testing.T) {
	tests := []struct {
		rate uint32
		ok   bool
	}{
		{24000, false},
		{225000, false},
		{240000, true},
		{300000, true},
		{500000, false},
		{900000, false},
		{1024000, true},
		{2048000, true},
		{3200000, true},
		{3300000, false},
	}
	for _, tt := range tests {
		if got := isValidRate(tt.rate); got != tt.ok {
			t.Errorf("isValidRate(%d) = %v, expected %v", tt.rate, got, tt.ok)
		}
	}
}
