package timefmt

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{0.9, "0:00"},
		{9, "0:09"},
		{59.99, "0:59"},
		{60, "1:00"},
		{65, "1:05"},
		{599, "9:59"},
		{600, "10:00"},
		{3725, "62:05"},
	}
	for _, tt := range tests {
		if got := Format(tt.seconds); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{50 * time.Second, "0:50"},
		{3*time.Minute + 20*time.Second, "3:20"},
		{10*time.Minute + 500*time.Millisecond, "10:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
