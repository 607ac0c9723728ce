package report

import (
	"testing"
	"time"

	"railstatus-service/pkg/utils"
)

func TestStartDay(t *testing.T) {
	today := time.Date(2025, 12, 21, 9, 0, 0, 0, utils.IST)
	tests := []struct {
		name       string
		sourceDate string
		want       int
	}{
		{"today", "2025-12-21", 0},
		{"yesterday display layout", "20-12-2025", 1},
		{"two days legacy layout", "19-Dec-2025", 2},
		{"keyed api timestamp", "Dec 19, 2025 10:30:00 AM", 2},
		{"future", "2025-12-24", 0},
		{"unparseable", "sometime", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartDay(tt.sourceDate, today); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestStartDayUsesISTCalendar(t *testing.T) {
	// 20:00 UTC on the 20th is already the 21st in India.
	today := time.Date(2025, 12, 20, 20, 0, 0, 0, time.UTC)
	if got := StartDay("20-12-2025", today); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestDaysSinceDeparture(t *testing.T) {
	today := time.Date(2025, 12, 21, 9, 0, 0, 0, utils.IST)

	days, ok := DaysSinceDeparture("2025-12-24", today)
	if !ok || days != -3 {
		t.Errorf("expected -3 days, got %d (ok=%v)", days, ok)
	}
	if _, ok := DaysSinceDeparture("n/a", today); ok {
		t.Error("expected unparseable date to be rejected")
	}
}

func TestFormatSourceDate(t *testing.T) {
	r := samplePNR()
	if got := FormatSourceDate(r); got != "20-12-2025" {
		t.Errorf("expected 20-12-2025, got %s", got)
	}

	r.SourceDepartureDate = ""
	if got := FormatSourceDate(r); got != "Unknown" {
		t.Errorf("expected Unknown, got %s", got)
	}
	if got := FormatSourceDate(nil); got != "Unknown" {
		t.Errorf("expected Unknown, got %s", got)
	}
}
