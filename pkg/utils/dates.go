package utils

import (
	"strings"
	"time"
)

// IST is Indian Standard Time, UTC+05:30. A fixed zone avoids depending on tzdata.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// Constants
const (
	ISO_DATE_LAYOUT     = "2006-01-02"
	DISPLAY_DATE_LAYOUT = "02-01-2006"
	LEGACY_DATE_LAYOUT  = "02-Jan-2006"
	CLOCK_LAYOUT        = "15:04"
)

// journeyDateLayouts lists every date shape seen in upstream PNR and train payloads.
var journeyDateLayouts = []string{
	ISO_DATE_LAYOUT,
	DISPLAY_DATE_LAYOUT,
	LEGACY_DATE_LAYOUT,
	"02/01/2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2, 2006 3:04:05 PM",
	"Jan 2, 2006",
	time.RFC3339,
}

// ParseJourneyDate parses a calendar date in any known upstream layout.
// The result is midnight IST of that date.
func ParseJourneyDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range journeyDateLayouts {
		if t, err := time.ParseInLocation(layout, s, IST); err == nil {
			return DateOf(t), true
		}
	}
	return time.Time{}, false
}

// DateOf truncates t to midnight of its IST calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.In(IST).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, IST)
}

// DaysBetween returns the number of calendar days from one IST date to another.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.In(IST).Date()
	ty, tm, td := to.In(IST).Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// ClockIST renders a unix timestamp as an IST wall clock, or "" for zero.
func ClockIST(unix int64) string {
	if unix == 0 {
		return ""
	}
	return time.Unix(unix, 0).In(IST).Format(CLOCK_LAYOUT)
}
