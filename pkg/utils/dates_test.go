package utils

import (
	"testing"
	"time"
)

func TestParseJourneyDate(t *testing.T) {
	want := time.Date(2025, time.December, 21, 0, 0, 0, 0, IST)
	inputs := []string{
		"2025-12-21",
		"21-12-2025",
		"21-Dec-2025",
		"21/12/2025",
		"21 Dec 2025",
		"Dec 21, 2025 10:30:00 AM",
		" 2025-12-21 ",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, ok := ParseJourneyDate(in)
			if !ok {
				t.Fatalf("expected %q to parse", in)
			}
			if !got.Equal(want) {
				t.Errorf("expected %v, got %v", want, got)
			}
		})
	}
}

func TestParseJourneyDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "2025-13-45"} {
		if _, ok := ParseJourneyDate(in); ok {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2025, time.December, 30, 23, 0, 0, 0, IST)
	to := time.Date(2026, time.January, 2, 1, 0, 0, 0, IST)
	if got := DaysBetween(from, to); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := DaysBetween(to, from); got != -3 {
		t.Errorf("expected -3, got %d", got)
	}
}

func TestClockIST(t *testing.T) {
	// 2025-01-01 00:00:00 UTC is 05:30 IST.
	if got := ClockIST(1735689600); got != "05:30" {
		t.Errorf("expected 05:30, got %s", got)
	}
	if got := ClockIST(0); got != "" {
		t.Errorf("expected empty string, got %s", got)
	}
}
