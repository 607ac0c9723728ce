package usecase

import (
	"context"
	"fmt"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/internal/domain/repository"
	"railstatus-service/internal/report"
	"railstatus-service/pkg/logger"
	"railstatus-service/pkg/metrics"
)

// PNRService answers questions about a single reservation
type PNRService struct {
	pnrRepo repository.PNRRepository
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewPNRService creates a new PNR service
func NewPNRService(pnrRepo repository.PNRRepository, m *metrics.Metrics, logger logger.Logger) *PNRService {
	return &PNRService{
		pnrRepo: pnrRepo,
		metrics: m,
		logger:  logger,
	}
}

// Fetch validates the PNR and fetches it. No upstream call is made for a malformed PNR.
func (s *PNRService) Fetch(ctx context.Context, pnr string) (*entity.PNRRecord, error) {
	if err := entity.ValidatePNR(pnr); err != nil {
		s.metrics.Error("validate_pnr")
		return nil, err
	}

	record, err := s.pnrRepo.FetchPNR(ctx, pnr)
	if err != nil {
		s.metrics.Error("fetch_pnr")
		s.logger.Warn("Failed to fetch PNR", "pnr", pnr, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrPNRUnavailable, err)
	}
	return record, nil
}

func (s *PNRService) render(ctx context.Context, pnr, name string, derive func(*entity.PNRRecord) string) (string, error) {
	record, err := s.Fetch(ctx, pnr)
	if err != nil {
		return "", err
	}
	s.metrics.ReportRendered(name)
	return derive(record), nil
}

// ConfirmStatus returns the current status of every passenger
func (s *PNRService) ConfirmStatus(ctx context.Context, pnr string) (string, error) {
	return s.render(ctx, pnr, "confirmation", report.ConfirmationStatus)
}

// CoachesAndBerths returns the coach and berth of every confirmed passenger
func (s *PNRService) CoachesAndBerths(ctx context.Context, pnr string) (string, error) {
	return s.render(ctx, pnr, "coach_berth", report.CoachAndBerth)
}

// WaitlistPosition returns the queue position of every waitlisted passenger
func (s *PNRService) WaitlistPosition(ctx context.Context, pnr string) (string, error) {
	return s.render(ctx, pnr, "waitlist", report.WaitlistPosition)
}

// TrainFromPNR returns the number and name of the booked train
func (s *PNRService) TrainFromPNR(ctx context.Context, pnr string) (string, error) {
	return s.render(ctx, pnr, "train_identity", report.TrainIdentity)
}

// JourneyOverview returns the journey details of the booking
func (s *PNRService) JourneyOverview(ctx context.Context, pnr string) (string, error) {
	return s.render(ctx, pnr, "journey_overview", report.JourneyOverview)
}

// PassengerSummary returns status, coach and berth for every passenger
func (s *PNRService) PassengerSummary(ctx context.Context, pnr string) (string, error) {
	return s.render(ctx, pnr, "passenger_summary", report.PassengerSummary)
}

// CompleteSummary returns journey and passenger information in one view
func (s *PNRService) CompleteSummary(ctx context.Context, pnr string) (string, error) {
	return s.render(ctx, pnr, "pnr_summary", report.PNRSummary)
}
