package marketdata

import (
	"math"
	"testing"
)

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"billions", 19.2e12, "19200.00B"},
		{"one billion", 1e9, "1.00B"},
		{"millions", 4.5e6, "4.50M"},
		{"thousands", 50000, "50.00K"},
		{"small", 178.23, "178.23"},
		{"nan", math.NaN(), "N/A"},
		{"positive infinity", math.Inf(1), "N/A"},
		{"negative infinity", math.Inf(-1), "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCompact(tt.v); got != tt.want {
				t.Errorf("FormatCompact(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"positive", 10.0, "10.00"},
		{"negative", -5.125, "-5.13"},
		{"zero", 0, "0.00"},
		{"nan", math.NaN(), "N/A"},
		{"infinity", math.Inf(1), "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPercent(tt.v); got != tt.want {
				t.Errorf("FormatPercent(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"small", 178.2, "₹178.20"},
		{"thousands", 2850.55, "₹2,850.55"},
		{"lakhs", 123456.78, "₹1,23,456.78"},
		{"crores", 12345678.9, "₹1,23,45,678.90"},
		{"negative", -2850.55, "-₹2,850.55"},
		{"nan", math.NaN(), "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPrice(tt.v); got != tt.want {
				t.Errorf("FormatPrice(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
