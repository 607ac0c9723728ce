package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/pkg/utils"
)

var journeyToday = time.Date(2025, 12, 21, 9, 0, 0, 0, utils.IST)

func newJourneyService(pnrRepo *fakePNRRepo, trainRepo *fakeTrainRepo) *JourneyService {
	svc := NewJourneyService(
		NewPNRService(pnrRepo, nil, testLogger),
		NewTrainService(trainRepo, nil, testLogger),
		testLogger,
	)
	svc.now = func() time.Time { return journeyToday }
	return svc
}

func TestResolveRun(t *testing.T) {
	svc := newJourneyService(&fakePNRRepo{}, &fakeTrainRepo{})

	tests := []struct {
		name        string
		sourceDate  string
		wantDay     int
		wantDate    string
		wantStarted bool
	}{
		{"yesterday", "20-12-2025", 1, "20-12-2025", true},
		{"today", "2025-12-21", 0, "21-12-2025", true},
		{"future", "24-12-2025", 0, "24-12-2025", false},
		{"unparseable", "soon", 0, "Unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := samplePNR()
			record.SourceDepartureDate = tt.sourceDate

			journey, err := svc.ResolveRun(record)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if journey.StartDay != tt.wantDay || journey.SourceDate != tt.wantDate || journey.Started() != tt.wantStarted {
				t.Errorf("unexpected journey: %+v", journey)
			}
		})
	}
}

func TestResolveRunWithoutTrainNumber(t *testing.T) {
	svc := newJourneyService(&fakePNRRepo{}, &fakeTrainRepo{})
	record := samplePNR()
	record.TrainNumber = ""

	if _, err := svc.ResolveRun(record); !errors.Is(err, ErrNoTrainNumber) {
		t.Errorf("expected ErrNoTrainNumber, got %v", err)
	}
}

func TestTrainStatusByPNR(t *testing.T) {
	trains := &fakeTrainRepo{run: sampleRun()}
	svc := newJourneyService(&fakePNRRepo{record: samplePNR()}, trains)

	got, err := svc.TrainStatusByPNR(context.Background(), "8341223680")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trains.gotTrain != "12618" || trains.gotStartDay != 1 {
		t.Errorf("expected fetch of 12618 with start day 1, got %s/%d", trains.gotTrain, trains.gotStartDay)
	}
	for _, want := range []string{
		"Train Status for PNR: 8341223680",
		"Train Source Date: 20-12-2025",
		"Days since departure: 1",
		strings.Repeat("=", 40),
		"Current Train Position - Mangala Lakshadweep Express (12618):",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in:\n%s", want, got)
		}
	}
}

func TestTrainStatusByPNRInvalidPNR(t *testing.T) {
	pnrs := &fakePNRRepo{record: samplePNR()}
	trains := &fakeTrainRepo{run: sampleRun()}
	svc := newJourneyService(pnrs, trains)

	_, err := svc.TrainStatusByPNR(context.Background(), "12345abcde")
	if !errors.Is(err, entity.ErrInvalidPNR) {
		t.Fatalf("expected ErrInvalidPNR, got %v", err)
	}
	if pnrs.calls != 0 || trains.calls != 0 {
		t.Errorf("expected no fetches, got %d PNR and %d train", pnrs.calls, trains.calls)
	}
}

func TestTrainStatusByPNRRunUnavailable(t *testing.T) {
	svc := newJourneyService(&fakePNRRepo{record: samplePNR()}, &fakeTrainRepo{err: entity.ErrUnavailable})

	_, err := svc.TrainStatusByPNR(context.Background(), "8341223680")
	var runErr *RunUnavailableError
	if !errors.As(err, &runErr) || runErr.StartDay != 1 {
		t.Fatalf("expected RunUnavailableError for start day 1, got %v", err)
	}
	want := "Error fetching train status for train 12618. The train may not be running today or the start_day (1) may be incorrect."
	if got := UserMessage(err); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestArrivalByPNR(t *testing.T) {
	svc := newJourneyService(&fakePNRRepo{record: samplePNR()}, &fakeTrainRepo{run: sampleRun()})

	got, err := svc.ArrivalByPNR(context.Background(), "8341223680", "ET")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "Arrival at Itarsi Jn (ET):") {
		t.Errorf("unexpected arrival report:\n%s", got)
	}
}

func TestFullJourneyStatus(t *testing.T) {
	svc := newJourneyService(&fakePNRRepo{record: samplePNR()}, &fakeTrainRepo{run: sampleRun()})

	got, err := svc.FullJourneyStatus(context.Background(), "8341223680")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"PNR: 8341223680", "LIVE TRAIN STATUS", "Current Station: Bhopal Jn (BPL)",
		strings.Repeat("-", 40), "Upcoming Stations for"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in:\n%s", want, got)
		}
	}
}

func TestFullJourneyStatusNotStarted(t *testing.T) {
	record := samplePNR()
	record.SourceDepartureDate = "24-12-2025"
	trains := &fakeTrainRepo{run: sampleRun()}
	svc := newJourneyService(&fakePNRRepo{record: record}, trains)

	got, err := svc.FullJourneyStatus(context.Background(), "8341223680")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Train has not started yet.") || !strings.Contains(got, "Days until departure: 3") ||
		!strings.Contains(got, "Scheduled departure from source: 24-12-2025") {
		t.Errorf("unexpected report:\n%s", got)
	}
	if trains.calls != 0 {
		t.Errorf("expected no live fetch for a future run, got %d", trains.calls)
	}
}

func TestFullJourneyStatusLiveUnavailable(t *testing.T) {
	svc := newJourneyService(&fakePNRRepo{record: samplePNR()}, &fakeTrainRepo{err: entity.ErrUnavailable})

	got, err := svc.FullJourneyStatus(context.Background(), "8341223680")
	if err != nil {
		t.Fatalf("expected the failure to be embedded in the report, got %v", err)
	}
	if !strings.Contains(got, "Unable to fetch live status for train 12618.") || !strings.Contains(got, "Train source date: 20-12-2025") {
		t.Errorf("unexpected report:\n%s", got)
	}
}

func TestFullJourneyStatusPNRUnavailable(t *testing.T) {
	svc := newJourneyService(&fakePNRRepo{err: entity.ErrUnavailable}, &fakeTrainRepo{})

	_, err := svc.FullJourneyStatus(context.Background(), "8341223680")
	if UserMessage(err) != MsgPNRUnavailable {
		t.Errorf("expected PNR unavailable message, got %v", err)
	}
}
