package entity

import "errors"

var (
	// ErrInvalidPNR is returned for a PNR that is not exactly 10 decimal digits.
	// It is always raised before any upstream call.
	ErrInvalidPNR = errors.New("invalid PNR number")

	// ErrUnavailable covers every upstream failure: transport errors, non-success
	// flags and undecodable payloads.
	ErrUnavailable = errors.New("upstream data unavailable")
)
