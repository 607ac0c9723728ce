package report

import (
	"strings"
	"testing"
)

func TestFormatDelay(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "On Time"},
		{45, "Delayed by 45 mins"},
		{60, "Delayed by 1h 0m"},
		{67, "Delayed by 1h 7m"},
		{185, "Delayed by 3h 5m"},
		{-12, "Early by 12 mins"},
		{-90, "Early by 90 mins"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDelay(tt.minutes); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatDelayClasses(t *testing.T) {
	for d := -600; d <= 600; d++ {
		got := FormatDelay(d)
		if (got == "On Time") != (d == 0) {
			t.Fatalf("delay %d: unexpected on-time classification %q", d, got)
		}
		if strings.Contains(got, "Early") != (d < 0) {
			t.Fatalf("delay %d: unexpected early classification %q", d, got)
		}
		if strings.Contains(got, "Delayed") != (d > 0) {
			t.Fatalf("delay %d: unexpected delayed classification %q", d, got)
		}
	}
}
