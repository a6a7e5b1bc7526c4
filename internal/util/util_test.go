package util

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 900, expected: "900 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "photo upload size", bytes: 3 * 1024 * 1024, expected: "3.0 MB"},
		{name: "fractional megabyte", bytes: 2621440 + 524288, expected: "3.0 MB"},
		{name: "gigabyte", bytes: 2 * 1024 * 1024 * 1024, expected: "2.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "seconds only", duration: 30 * time.Second, expected: "30s"},
		{name: "sub-second rounds", duration: 59*time.Second + 600*time.Millisecond, expected: "1m0s"},
		{name: "sweep interval", duration: time.Minute, expected: "1m0s"},
		{name: "minutes and seconds", duration: 5*time.Minute + 10*time.Second, expected: "5m10s"},
		{name: "hours and minutes", duration: 2*time.Hour + 15*time.Minute, expected: "2h15m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
