// Package codes decodes the short status and berth codes used by Indian Railways
// reservation systems into display labels.
package codes

import (
	"fmt"
	"strings"
)

var bookingStatusLabels = map[string]string{
	// Core statuses
	"CNF":  "Confirmed",
	"RAC":  "Reservation Against Cancellation",
	"WL":   "Waitlist",
	"CAN":  "Cancelled",
	"NOSB": "No Seat Berth (Child below 12)",
	"REL":  "Released",
	"NR":   "Not Reported",

	// Waitlist quotas, each with its own position counter
	"GNWL": "General Waitlist",
	"RLWL": "Remote Location Waitlist",
	"PQWL": "Pooled Quota Waitlist",
	"TQWL": "Tatkal Waitlist",
	"RSWL": "Roadside Station Waitlist",
	"RQWL": "Request Waitlist",
	"CKWL": "Tatkal Waitlist (Old Code)",
}

var berthLabels = map[string]string{
	"LB": "Lower Berth",
	"MB": "Middle Berth",
	"UB": "Upper Berth",
	"SL": "Side Lower",
	"SU": "Side Upper",
	"SM": "Side Middle", // Garib Rath coaches
	"WS": "Window Side", // chair car
	"MS": "Middle Seat", // chair car
	"AS": "Aisle Seat",  // chair car
}

// UnknownStatus is returned for an empty status code.
const UnknownStatus = "Unknown Status"

// Normalize trims and upper-cases a raw code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DecodeBookingStatus returns the label for a booking or current status code.
// It never fails: unknown codes come back embedded in a fallback label.
func DecodeBookingStatus(code string) string {
	c := Normalize(code)
	if c == "" {
		return UnknownStatus
	}
	if label, ok := bookingStatusLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("Unknown Booking Status Code - (%s)", c)
}

// DecodeBerth returns the label for a berth type code, or "" for an empty code.
func DecodeBerth(code string) string {
	c := Normalize(code)
	if c == "" {
		return ""
	}
	if label, ok := berthLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("Unknown Berth Code - (%s)", c)
}

// IsKnownBookingStatus reports whether code has an entry in the booking status table.
func IsKnownBookingStatus(code string) bool {
	_, ok := bookingStatusLabels[Normalize(code)]
	return ok
}

// IsKnownBerth reports whether code has an entry in the berth table.
func IsKnownBerth(code string) bool {
	_, ok := berthLabels[Normalize(code)]
	return ok
}

// BookingStatusCodes returns every code in the booking status table.
func BookingStatusCodes() []string {
	out := make([]string, 0, len(bookingStatusLabels))
	for c := range bookingStatusLabels {
		out = append(out, c)
	}
	return out
}

// BerthCodes returns every code in the berth table.
func BerthCodes() []string {
	out := make([]string, 0, len(berthLabels))
	for c := range berthLabels {
		out = append(out, c)
	}
	return out
}
