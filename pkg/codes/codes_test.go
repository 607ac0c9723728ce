package codes

import (
	"strings"
	"testing"
)

func TestDecodeBookingStatus(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"confirmed", "CNF", "Confirmed"},
		{"lower case with spaces", "  gnwl ", "General Waitlist"},
		{"rac", "RAC", "Reservation Against Cancellation"},
		{"empty", "", UnknownStatus},
		{"whitespace only", "   ", UnknownStatus},
		{"unknown", "xx", "Unknown Booking Status Code - (XX)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeBookingStatus(tt.code); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDecodeBerth(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"LB", "Lower Berth"},
		{"su", "Side Upper"},
		{"", ""},
		{"ZZ", "Unknown Berth Code - (ZZ)"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := DecodeBerth(tt.code); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEveryKnownCodeHasDistinctLabel(t *testing.T) {
	for _, c := range BookingStatusCodes() {
		label := DecodeBookingStatus(c)
		if label == "" || strings.HasPrefix(label, "Unknown") {
			t.Errorf("booking code %s decoded to fallback label %q", c, label)
		}
		if !IsKnownBookingStatus(c) {
			t.Errorf("expected %s to be known", c)
		}
	}
	for _, c := range BerthCodes() {
		label := DecodeBerth(c)
		if label == "" || strings.HasPrefix(label, "Unknown") {
			t.Errorf("berth code %s decoded to fallback label %q", c, label)
		}
		if !IsKnownBerth(c) {
			t.Errorf("expected %s to be known", c)
		}
	}
	if len(BookingStatusCodes()) != 14 {
		t.Errorf("expected 14 booking codes, got %d", len(BookingStatusCodes()))
	}
	if len(BerthCodes()) != 9 {
		t.Errorf("expected 9 berth codes, got %d", len(BerthCodes()))
	}
}
