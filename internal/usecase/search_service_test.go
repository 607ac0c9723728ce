package usecase

import (
	"context"
	"errors"
	"testing"

	"railstatus-service/internal/domain/entity"
)

func TestSearchStations(t *testing.T) {
	repo := &fakeSearchRepo{stations: []entity.StationMatch{{Code: "BPL", Name: "Bhopal Jn"}}}
	svc := NewSearchService(repo, 8, nil, testLogger)

	got, err := svc.Stations(context.Background(), "  bhopal ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "Stations matching 'bhopal':\n  • Bhopal Jn - Code: BPL\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if repo.gotLimit != 8 {
		t.Errorf("expected limit 8, got %d", repo.gotLimit)
	}
}

func TestSearchUnavailableRendersNoMatches(t *testing.T) {
	svc := NewSearchService(&fakeSearchRepo{err: entity.ErrUnavailable}, 8, nil, testLogger)

	got, err := svc.Trains(context.Background(), "rajdhani")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "No trains found matching 'rajdhani'"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	svc := NewSearchService(&fakeSearchRepo{}, 8, nil, testLogger)

	if _, err := svc.Stations(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
