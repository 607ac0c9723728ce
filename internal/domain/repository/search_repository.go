package repository

import (
	"context"

	"railstatus-service/internal/domain/entity"
)

// SearchRepository defines the interface for station and train name lookups
type SearchRepository interface {
	SearchStations(ctx context.Context, query string, limit int) ([]entity.StationMatch, error)
	SearchTrains(ctx context.Context, query string, limit int) ([]entity.TrainMatch, error)
}
