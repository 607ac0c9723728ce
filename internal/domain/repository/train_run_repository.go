package repository

import (
	"context"

	"railstatus-service/internal/domain/entity"
)

// TrainRunRepository fetches the live status of one run of a train.
// startDay is the number of days since the run left its origin (0 = today).
type TrainRunRepository interface {
	FetchTrainRun(ctx context.Context, trainNumber string, startDay int) (*entity.TrainRunStatus, error)
}
