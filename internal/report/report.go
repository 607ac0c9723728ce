// Package report derives human-readable answers from normalized PNR and
// train run records. Every function is pure and safe for concurrent use;
// a nil record yields a fixed "not available" message instead of an error.
package report

import (
	"fmt"
	"strings"
)

// Fixed messages for missing data.
const (
	PNRUnavailable           = "PNR data not available."
	ConfirmStatusUnavailable = "Confirm status not available."
	CoachBerthUnavailable    = "Coach & Berth not available."
	WaitlistUnavailable      = "Unable to get waitlist position."
	TrainNumberUnavailable   = "Train number not available in PNR data."
	TrainRunUnavailable      = "Train status not available."
	NoRouteInformation       = "No route information available"
	NoUpcomingStations       = "No upcoming stations available"
)

// DefaultUpcomingLimit is used when UpcomingStations is given a non-positive limit.
const DefaultUpcomingLimit = 5

// FormatDelay renders a signed delay in minutes. The hour component is
// dropped when it is zero, and early running is never split into hours.
func FormatDelay(minutes int) string {
	switch {
	case minutes == 0:
		return "On Time"
	case minutes > 0:
		hours, mins := minutes/60, minutes%60
		if hours > 0 {
			return fmt.Sprintf("Delayed by %dh %dm", hours, mins)
		}
		return fmt.Sprintf("Delayed by %d mins", mins)
	default:
		return fmt.Sprintf("Early by %d mins", -minutes)
	}
}

// stationLabel renders "Name (CODE)", or just whichever half is known.
func stationLabel(name, code string) string {
	switch {
	case name == "":
		return code
	case code == "":
		return name
	default:
		return fmt.Sprintf("%s (%s)", name, code)
	}
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func lines(ls []string) string {
	return strings.Join(ls, "\n")
}
