package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/internal/domain/repository"
	"railstatus-service/internal/interface/feed"
	"railstatus-service/internal/report"
	"railstatus-service/pkg/logger"
	"railstatus-service/pkg/metrics"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// TrainService answers questions about one run of a train
type TrainService struct {
	trainRepo repository.TrainRunRepository
	now       func() time.Time
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewTrainService creates a new train service
func NewTrainService(trainRepo repository.TrainRunRepository, m *metrics.Metrics, logger logger.Logger) *TrainService {
	return &TrainService{
		trainRepo: trainRepo,
		now:       time.Now,
		metrics:   m,
		logger:    logger,
	}
}

// Fetch fetches the run that left its origin startDay days ago
func (s *TrainService) Fetch(ctx context.Context, trainNumber string, startDay int) (*entity.TrainRunStatus, error) {
	trainNumber = strings.TrimSpace(trainNumber)
	if trainNumber == "" {
		return nil, fmt.Errorf("%w: train number is required", ErrInvalidInput)
	}
	if startDay < 0 {
		return nil, fmt.Errorf("%w: start_day must not be negative, got %d", ErrInvalidInput, startDay)
	}

	run, err := s.trainRepo.FetchTrainRun(ctx, trainNumber, startDay)
	if err != nil {
		s.metrics.Error("fetch_train_run")
		s.logger.Warn("Failed to fetch train run", "train", trainNumber, "startDay", startDay, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrTrainUnavailable, err)
	}
	return run, nil
}

func (s *TrainService) render(ctx context.Context, trainNumber string, startDay int, name string, derive func(*entity.TrainRunStatus) string) (string, error) {
	run, err := s.Fetch(ctx, trainNumber, startDay)
	if err != nil {
		return "", err
	}
	s.metrics.ReportRendered(name)
	return derive(run), nil
}

// LiveStatus returns the current position of the train
func (s *TrainService) LiveStatus(ctx context.Context, trainNumber string, startDay int) (string, error) {
	return s.render(ctx, trainNumber, startDay, "current_position", report.CurrentPosition)
}

// ArrivalAtStation returns the expected arrival at stationCode
func (s *TrainService) ArrivalAtStation(ctx context.Context, trainNumber, stationCode string, startDay int) (string, error) {
	if strings.TrimSpace(stationCode) == "" {
		return "", fmt.Errorf("%w: station code is required", ErrInvalidInput)
	}
	return s.render(ctx, trainNumber, startDay, "arrival", func(run *entity.TrainRunStatus) string {
		return report.ArrivalAtStation(run, stationCode)
	})
}

// CompleteRoute returns every station of the route in order
func (s *TrainService) CompleteRoute(ctx context.Context, trainNumber string, startDay int, includeNonStops bool) (string, error) {
	return s.render(ctx, trainNumber, startDay, "route", func(run *entity.TrainRunStatus) string {
		return report.Route(run, includeNonStops)
	})
}

// NextStations returns up to limit upcoming halts
func (s *TrainService) NextStations(ctx context.Context, trainNumber string, startDay, limit int) (string, error) {
	return s.render(ctx, trainNumber, startDay, "upcoming", func(run *entity.TrainRunStatus) string {
		return report.UpcomingStations(run, limit)
	})
}

// BriefSummary returns a short status card
func (s *TrainService) BriefSummary(ctx context.Context, trainNumber string, startDay int) (string, error) {
	return s.render(ctx, trainNumber, startDay, "train_summary", report.TrainSummary)
}

// Feed returns the run as a GTFS-Realtime feed message
func (s *TrainService) Feed(ctx context.Context, trainNumber string, startDay int) (*gtfs.FeedMessage, error) {
	run, err := s.Fetch(ctx, trainNumber, startDay)
	if err != nil {
		return nil, err
	}
	s.metrics.ReportRendered("gtfsrt")
	return feed.BuildTripUpdateFeed(run, s.now()), nil
}
