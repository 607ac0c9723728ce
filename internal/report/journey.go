package report

import (
	"time"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/pkg/utils"
)

// SourceDate parses the date the booked train left its origin.
func SourceDate(r *entity.PNRRecord) (time.Time, bool) {
	if r == nil {
		return time.Time{}, false
	}
	return utils.ParseJourneyDate(r.SourceDepartureDate)
}

// DaysSinceDeparture returns the signed number of IST calendar days from
// sourceDate to today. It is negative when the run has not started yet.
func DaysSinceDeparture(sourceDate string, today time.Time) (int, bool) {
	date, ok := utils.ParseJourneyDate(sourceDate)
	if !ok {
		return 0, false
	}
	return utils.DaysBetween(date, today), true
}

// StartDay converts a source departure date into the run offset the live
// status upstream expects: 0 for today, 1 for yesterday and so on. Future or
// unparseable dates give 0.
func StartDay(sourceDate string, today time.Time) int {
	days, ok := DaysSinceDeparture(sourceDate, today)
	if !ok {
		return 0
	}
	return max(0, days)
}

// FormatSourceDate renders the parsed source date as DD-MM-YYYY, or "Unknown".
func FormatSourceDate(r *entity.PNRRecord) string {
	date, ok := SourceDate(r)
	if !ok {
		return "Unknown"
	}
	return date.Format(utils.DISPLAY_DATE_LAYOUT)
}
