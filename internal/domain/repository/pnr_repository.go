package repository

import (
	"context"

	"railstatus-service/internal/domain/entity"
)

// PNRRepository fetches one reservation from an upstream PNR API.
// Failures are reported as entity.ErrUnavailable, malformed input as entity.ErrInvalidPNR.
type PNRRepository interface {
	FetchPNR(ctx context.Context, pnr string) (*entity.PNRRecord, error)
}
