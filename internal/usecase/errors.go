package usecase

import (
	"errors"
	"fmt"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/internal/report"
)

// Messages shown to passengers when a query cannot be answered.
const (
	MsgInvalidPNR       = "Invalid PNR number. A PNR must be exactly 10 digits."
	MsgPNRUnavailable   = "Error fetching PNR status. Please double check the PNR number provided."
	MsgTrainUnavailable = "Error fetching train status. Please check the train number and start_day."
	MsgInvalidInput     = "Invalid request. Please check the train number, station code and start_day."
	MsgUnexpected       = "Something went wrong. Please try again later."
)

var (
	// ErrInvalidInput covers malformed train numbers, station codes, offsets and queries.
	ErrInvalidInput = errors.New("invalid input")

	ErrPNRUnavailable   = fmt.Errorf("pnr %w", entity.ErrUnavailable)
	ErrTrainUnavailable = fmt.Errorf("train run %w", entity.ErrUnavailable)
	ErrNoTrainNumber    = fmt.Errorf("%w: train number missing from PNR", entity.ErrUnavailable)
)

// RunUnavailableError reports a failed live status fetch for a run derived from a PNR.
type RunUnavailableError struct {
	TrainNumber string
	StartDay    int
	Err         error
}

func (e *RunUnavailableError) Error() string {
	return fmt.Sprintf("train %s (start_day %d): %v", e.TrainNumber, e.StartDay, e.Err)
}

func (e *RunUnavailableError) Unwrap() error {
	return e.Err
}

// IsInvalidInput reports whether err was caused by the caller rather than an upstream.
func IsInvalidInput(err error) bool {
	return errors.Is(err, entity.ErrInvalidPNR) || errors.Is(err, ErrInvalidInput)
}

// UserMessage maps a use case error to the fixed text shown to passengers.
func UserMessage(err error) string {
	var runErr *RunUnavailableError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, entity.ErrInvalidPNR):
		return MsgInvalidPNR
	case errors.Is(err, ErrInvalidInput):
		return MsgInvalidInput
	case errors.Is(err, ErrNoTrainNumber):
		return report.TrainNumberUnavailable
	case errors.As(err, &runErr):
		return fmt.Sprintf("Error fetching train status for train %s. The train may not be running today or the start_day (%d) may be incorrect.",
			runErr.TrainNumber, runErr.StartDay)
	case errors.Is(err, ErrPNRUnavailable):
		return MsgPNRUnavailable
	case errors.Is(err, ErrTrainUnavailable):
		return MsgTrainUnavailable
	default:
		return MsgUnexpected
	}
}
