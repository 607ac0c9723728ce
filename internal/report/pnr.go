package report

import (
	"fmt"
	"sort"
	"strings"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/pkg/codes"
)

// passengersInOrder returns a copy of the passengers sorted by their number.
func passengersInOrder(r *entity.PNRRecord) []entity.PassengerRecord {
	ps := append([]entity.PassengerRecord(nil), r.Passengers...)
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Number < ps[j].Number
	})
	return ps
}

// statusCode strips the descriptive suffix some upstreams append, as in "CNF/B1/25".
func statusCode(status string) string {
	code, _, _ := strings.Cut(strings.TrimSpace(status), "/")
	return code
}

func berthText(p entity.PassengerRecord) string {
	text := fmt.Sprintf("Coach: %s, Berth: %d", orDefault(p.Coach, "-"), p.BerthNumber)
	if label := codes.DecodeBerth(p.BerthCode); label != "" {
		text += fmt.Sprintf(" (%s)", label)
	}
	return text
}

// ConfirmationStatus lists the decoded current status of each passenger.
func ConfirmationStatus(r *entity.PNRRecord) string {
	if r == nil {
		return PNRUnavailable
	}

	var b strings.Builder
	for _, p := range passengersInOrder(r) {
		fmt.Fprintf(&b, "Passenger-%d: %s\n", p.Number, codes.DecodeBookingStatus(statusCode(p.CurrentStatus)))
	}
	if b.Len() == 0 {
		return ConfirmStatusUnavailable
	}
	return b.String()
}

// CoachAndBerth lists the coach and berth of confirmed or RAC passengers.
func CoachAndBerth(r *entity.PNRRecord) string {
	if r == nil {
		return PNRUnavailable
	}

	var b strings.Builder
	for _, p := range passengersInOrder(r) {
		text := "Not Confirmed"
		if p.IsConfirmedOrRAC() {
			text = berthText(p)
		}
		fmt.Fprintf(&b, "Passenger-%d: %s\n", p.Number, text)
	}
	if b.Len() == 0 {
		return CoachBerthUnavailable
	}
	return b.String()
}

// WaitlistPosition reports each passenger's queue position from the booking
// details. Details without a "/" are shown verbatim.
func WaitlistPosition(r *entity.PNRRecord) string {
	if r == nil {
		return PNRUnavailable
	}

	var b strings.Builder
	for _, p := range passengersInOrder(r) {
		var text string
		switch code, position, ok := p.WaitlistPosition(); {
		case p.IsConfirmedOrRAC():
			text = "Already Confirmed/RAC"
		case ok:
			text = fmt.Sprintf("Position %s in %s (%s)", position, codes.DecodeBookingStatus(code), codes.Normalize(code))
		default:
			text = orDefault(p.BookingStatusDetails, orDefault(p.BookingStatus, codes.UnknownStatus))
		}
		fmt.Fprintf(&b, "Passenger-%d: %s\n", p.Number, text)
	}
	if b.Len() == 0 {
		return WaitlistUnavailable
	}
	return b.String()
}

// TrainIdentity names the train booked on the PNR.
func TrainIdentity(r *entity.PNRRecord) string {
	if r == nil {
		return PNRUnavailable
	}
	if strings.TrimSpace(r.TrainNumber) == "" {
		return TrainNumberUnavailable
	}
	return fmt.Sprintf("Train Number: %s, Train Name: %s", r.TrainNumber, orDefault(r.TrainName, "Unknown"))
}

func chartText(prepared bool) string {
	if prepared {
		return "Chart Prepared"
	}
	return "Chart Not Prepared"
}

// JourneyOverview renders the journey fields of a PNR. The pantry and
// cancellation lines are appended after the fixed fields, never in place of them.
func JourneyOverview(r *entity.PNRRecord) string {
	if r == nil {
		return PNRUnavailable
	}

	ls := []string{
		fmt.Sprintf("Journey Overview for PNR %s:", r.PNR),
		"",
		fmt.Sprintf("Train: %s", stationLabel(r.TrainName, r.TrainNumber)),
		fmt.Sprintf("Date of Journey: %s", orDefault(r.JourneyDate, "Unknown")),
	}
	if r.DepartureTime != "" {
		ls = append(ls, fmt.Sprintf("Departure: %s", r.DepartureTime))
	}
	if r.ArrivalTime != "" {
		ls = append(ls, fmt.Sprintf("Arrival: %s", r.ArrivalTime))
	}
	if r.Duration != "" {
		ls = append(ls, fmt.Sprintf("Duration: %s", r.Duration))
	}
	ls = append(ls,
		fmt.Sprintf("Source Station: %s", stationLabel(r.SourceName, r.SourceCode)),
		fmt.Sprintf("Destination Station: %s", stationLabel(r.DestinationName, r.DestinationCode)),
		fmt.Sprintf("Boarding Point: %s", orDefault(stationLabel(r.BoardingName, r.BoardingCode), "Unknown")),
		fmt.Sprintf("Fare: %s", fareText(r.Fare)),
		fmt.Sprintf("Class: %s", orDefault(r.JourneyClass, "Unknown")),
		fmt.Sprintf("Quota: %s", orDefault(r.Quota, "Unknown")),
		fmt.Sprintf("Passengers: %d", r.PassengerCount),
		fmt.Sprintf("Chart Status: %s", chartText(r.ChartPrepared)),
	)
	if r.BookingDate != "" {
		ls = append(ls, fmt.Sprintf("Booked On: %s", r.BookingDate))
	}
	if r.ExpectedPlatform != "" && r.ExpectedPlatform != "0" {
		ls = append(ls, fmt.Sprintf("Expected Platform: %s", r.ExpectedPlatform))
	}
	if r.PantryAvailable {
		ls = append(ls, "Pantry: Available")
	}
	if r.Cancelled {
		ls = append(ls, "⚠️ Train Cancelled")
	}
	return lines(ls)
}

func fareText(fare string) string {
	if fare == "" || fare == "0" {
		return "N/A"
	}
	return "₹" + fare
}

func statusWithLabel(details, code string) string {
	shown := orDefault(details, code)
	return fmt.Sprintf("%s (%s)", orDefault(shown, "-"), codes.DecodeBookingStatus(statusCode(code)))
}

// PassengerSummary renders booking and current status for every passenger.
func PassengerSummary(r *entity.PNRRecord) string {
	if r == nil {
		return PNRUnavailable
	}
	if len(r.Passengers) == 0 {
		return ConfirmStatusUnavailable
	}

	ls := []string{fmt.Sprintf("Passenger Summary for PNR %s:", r.PNR)}
	for _, p := range passengersInOrder(r) {
		ls = append(ls,
			"",
			fmt.Sprintf("Passenger %d:", p.Number),
			fmt.Sprintf("  Booking Status: %s", statusWithLabel(p.BookingStatusDetails, p.BookingStatus)),
			fmt.Sprintf("  Current Status: %s", statusWithLabel(p.CurrentStatusDetails, p.CurrentStatus)),
		)
		if p.IsConfirmedOrRAC() {
			ls = append(ls, "  "+berthText(p))
		}
		if p.Prediction != "" {
			ls = append(ls, fmt.Sprintf("  Prediction: %s", p.Prediction))
		}
	}
	return lines(ls)
}

// PNRSummary is the compact view of a PNR used at the top of combined reports.
func PNRSummary(r *entity.PNRRecord) string {
	if r == nil {
		return PNRUnavailable
	}

	ls := []string{
		fmt.Sprintf("PNR: %s", r.PNR),
		fmt.Sprintf("🚂 %s", stationLabel(r.TrainName, r.TrainNumber)),
		fmt.Sprintf("📅 %s", orDefault(r.JourneyDate, "Unknown")),
		fmt.Sprintf("%s → %s", stationLabel(r.SourceName, r.SourceCode), stationLabel(r.DestinationName, r.DestinationCode)),
		fmt.Sprintf("Class: %s | Quota: %s | %s", orDefault(r.JourneyClass, "-"), orDefault(r.Quota, "-"), chartText(r.ChartPrepared)),
	}
	if r.Cancelled {
		ls = append(ls, "⚠️ Train Cancelled")
	}

	ls = append(ls, "", fmt.Sprintf("Passengers (%d):", r.PassengerCount))
	for _, p := range passengersInOrder(r) {
		line := fmt.Sprintf("  %d. %s → %s", p.Number,
			orDefault(p.BookingStatusDetails, orDefault(p.BookingStatus, "-")),
			orDefault(p.CurrentStatusDetails, orDefault(p.CurrentStatus, "-")))
		if p.IsConfirmedOrRAC() && p.Coach != "" {
			line += fmt.Sprintf(" (%s/%d)", p.Coach, p.BerthNumber)
		}
		ls = append(ls, line)
	}
	return lines(ls)
}
