package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/internal/report"
	"railstatus-service/pkg/logger"
)

const rule = 40

// JourneyService combines a PNR with the live status of the run it is booked on.
// The run offset depends on the PNR, so the two fetches are always sequential.
type JourneyService struct {
	pnrs   *PNRService
	trains *TrainService
	now    func() time.Time
	logger logger.Logger
}

// NewJourneyService creates a new journey service
func NewJourneyService(pnrs *PNRService, trains *TrainService, logger logger.Logger) *JourneyService {
	return &JourneyService{
		pnrs:   pnrs,
		trains: trains,
		now:    time.Now,
		logger: logger,
	}
}

// JourneyRun identifies the physical run a PNR is booked on.
type JourneyRun struct {
	TrainNumber string
	SourceDate  string // DD-MM-YYYY, or "Unknown"
	StartDay    int
	// DaysSinceDeparture is negative when the train has not left its origin yet.
	DaysSinceDeparture int
	Dated              bool
}

// Started reports whether the run has left its origin by today.
func (r JourneyRun) Started() bool {
	return !r.Dated || r.DaysSinceDeparture >= 0
}

// ResolveRun is the step between the two fetches: it names the run a PNR belongs to.
func (s *JourneyService) ResolveRun(record *entity.PNRRecord) (JourneyRun, error) {
	trainNumber := strings.TrimSpace(record.TrainNumber)
	if trainNumber == "" {
		return JourneyRun{}, ErrNoTrainNumber
	}

	today := s.now()
	days, dated := report.DaysSinceDeparture(record.SourceDepartureDate, today)
	return JourneyRun{
		TrainNumber:        trainNumber,
		SourceDate:         report.FormatSourceDate(record),
		StartDay:           report.StartDay(record.SourceDepartureDate, today),
		DaysSinceDeparture: days,
		Dated:              dated,
	}, nil
}

func (s *JourneyService) fetchRun(ctx context.Context, journey JourneyRun) (*entity.TrainRunStatus, error) {
	run, err := s.trains.Fetch(ctx, journey.TrainNumber, journey.StartDay)
	if err != nil {
		return nil, &RunUnavailableError{TrainNumber: journey.TrainNumber, StartDay: journey.StartDay, Err: err}
	}
	return run, nil
}

// TrainStatusByPNR returns the live position of the train booked on pnr
func (s *JourneyService) TrainStatusByPNR(ctx context.Context, pnr string) (string, error) {
	record, err := s.pnrs.Fetch(ctx, pnr)
	if err != nil {
		return "", err
	}

	journey, err := s.ResolveRun(record)
	if err != nil {
		return "", err
	}

	run, err := s.fetchRun(ctx, journey)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Train Status for PNR: %s\n", pnr)
	fmt.Fprintf(&b, "Train Source Date: %s\n", journey.SourceDate)
	fmt.Fprintf(&b, "Days since departure: %d\n", journey.StartDay)
	b.WriteString(strings.Repeat("=", rule) + "\n\n")
	b.WriteString(report.CurrentPosition(run))

	s.trains.metrics.ReportRendered("train_status_by_pnr")
	return b.String(), nil
}

// ArrivalByPNR returns the expected arrival at stationCode for the train booked on pnr
func (s *JourneyService) ArrivalByPNR(ctx context.Context, pnr, stationCode string) (string, error) {
	if strings.TrimSpace(stationCode) == "" {
		return "", fmt.Errorf("%w: station code is required", ErrInvalidInput)
	}

	record, err := s.pnrs.Fetch(ctx, pnr)
	if err != nil {
		return "", err
	}

	journey, err := s.ResolveRun(record)
	if err != nil {
		return "", err
	}

	run, err := s.fetchRun(ctx, journey)
	if err != nil {
		return "", err
	}

	s.trains.metrics.ReportRendered("arrival_by_pnr")
	return report.ArrivalAtStation(run, stationCode), nil
}

// FullJourneyStatus renders the PNR summary followed by the live status of
// its run. A run that has not started or cannot be tracked is described in
// the report rather than returned as an error.
func (s *JourneyService) FullJourneyStatus(ctx context.Context, pnr string) (string, error) {
	record, err := s.pnrs.Fetch(ctx, pnr)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(report.PNRSummary(record))
	b.WriteString("\n" + strings.Repeat("=", rule) + "\n")
	b.WriteString("LIVE TRAIN STATUS\n")
	b.WriteString(strings.Repeat("=", rule) + "\n\n")
	defer s.trains.metrics.ReportRendered("full_journey")

	journey, err := s.ResolveRun(record)
	if err != nil {
		b.WriteString(report.TrainNumberUnavailable)
		return b.String(), nil
	}

	if !journey.Started() {
		b.WriteString("🚂 Train has not started yet.\n")
		fmt.Fprintf(&b, "📅 Scheduled departure from source: %s\n", journey.SourceDate)
		fmt.Fprintf(&b, "⏳ Days until departure: %d", -journey.DaysSinceDeparture)
		return b.String(), nil
	}

	run, err := s.fetchRun(ctx, journey)
	if err != nil {
		s.logger.Warn("Live status unavailable for journey", "pnr", pnr, "train", journey.TrainNumber,
			"startDay", journey.StartDay, "error", err)
		fmt.Fprintf(&b, "Unable to fetch live status for train %s.\n", journey.TrainNumber)
		fmt.Fprintf(&b, "Train source date: %s\n", journey.SourceDate)
		b.WriteString("The train may have completed its journey or live tracking is unavailable.")
		return b.String(), nil
	}

	b.WriteString(report.CurrentPosition(run))
	b.WriteString("\n\n" + strings.Repeat("-", rule) + "\n")
	b.WriteString(report.UpcomingStations(run, 3))
	return b.String(), nil
}
