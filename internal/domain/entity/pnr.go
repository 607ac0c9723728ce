// internal/domain/entity/pnr.go
package entity

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidatePNR checks that pnr is exactly 10 ASCII digits.
func ValidatePNR(pnr string) error {
	if err := validate.Var(pnr, "required,len=10,number"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPNR, pnr)
	}
	return nil
}

// PassengerRecord is one passenger on a PNR with booking and current allocation.
type PassengerRecord struct {
	Number               int    `json:"number"`
	BookingStatus        string `json:"bookingStatus"`
	BookingStatusDetails string `json:"bookingStatusDetails"` // e.g. GNWL/12
	CurrentStatus        string `json:"currentStatus"`
	CurrentStatusDetails string `json:"currentStatusDetails"`
	Coach                string `json:"coach,omitempty"`
	BerthNumber          int    `json:"berthNumber,omitempty"`
	BerthCode            string `json:"berthCode,omitempty"`
	Prediction           string `json:"prediction,omitempty"`
}

// IsConfirmedOrRAC reports whether the current status starts with CNF or RAC.
// Upstreams append suffixes such as "CNF/B2/34", so this is a prefix match.
func (p PassengerRecord) IsConfirmedOrRAC() bool {
	s := strings.ToUpper(strings.TrimSpace(p.CurrentStatus))
	return strings.HasPrefix(s, "CNF") || strings.HasPrefix(s, "RAC")
}

// WaitlistPosition splits BookingStatusDetails on the first "/" into the
// status type and the position. ok is false when there is no "/".
func (p PassengerRecord) WaitlistPosition() (code, position string, ok bool) {
	parts := strings.SplitN(p.BookingStatusDetails, "/", 2)
	if len(parts) < 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// PNRRecord is a normalized reservation, whichever upstream it came from.
type PNRRecord struct {
	PNR                 string `json:"pnr"`
	TrainNumber         string `json:"trainNumber"`
	TrainName           string `json:"trainName"`
	SourceCode          string `json:"sourceCode"`
	SourceName          string `json:"sourceName"`
	DestinationCode     string `json:"destinationCode"`
	DestinationName     string `json:"destinationName"`
	BoardingCode        string `json:"boardingCode"`
	BoardingName        string `json:"boardingName"`
	ReservationUptoCode string `json:"reservationUptoCode"`
	ReservationUptoName string `json:"reservationUptoName"`
	DepartureTime       string `json:"departureTime,omitempty"`
	ArrivalTime         string `json:"arrivalTime,omitempty"`
	JourneyDate         string `json:"journeyDate"`
	SourceDepartureDate string `json:"sourceDepartureDate"` // date the train left its origin
	BookingDate         string `json:"bookingDate,omitempty"`
	Fare                string `json:"fare"`
	JourneyClass        string `json:"journeyClass"`
	Quota               string `json:"quota"`
	Duration            string `json:"duration,omitempty"`
	ExpectedPlatform    string `json:"expectedPlatform,omitempty"`
	ChartPrepared       bool   `json:"chartPrepared"`
	Cancelled           bool   `json:"cancelled"`
	PantryAvailable     bool   `json:"pantryAvailable"`

	PassengerCount int               `json:"passengerCount"`
	Passengers     []PassengerRecord `json:"passengers"`
}
