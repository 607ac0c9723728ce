package report

import (
	"testing"

	"railstatus-service/internal/domain/entity"
)

func TestStationMatches(t *testing.T) {
	got := StationMatches("bhopal", []entity.StationMatch{{Code: "BPL", Name: "Bhopal Jn"}, {Code: "RKMP", Name: "Rani Kamlapati"}})
	want := "Stations matching 'bhopal':\n  • Bhopal Jn - Code: BPL\n  • Rani Kamlapati - Code: RKMP\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := StationMatches("zzz", nil); got != "No stations found matching 'zzz'" {
		t.Errorf("unexpected empty result %q", got)
	}
}

func TestTrainMatches(t *testing.T) {
	got := TrainMatches("shatabdi", []entity.TrainMatch{{Number: "12002", Name: "Shatabdi Express", FromCode: "NDLS", ToCode: "RKMP"}})
	want := "Trains matching 'shatabdi':\n  • 12002 - Shatabdi Express (NDLS → RKMP)\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := TrainMatches("zzz", []entity.TrainMatch{}); got != "No trains found matching 'zzz'" {
		t.Errorf("unexpected empty result %q", got)
	}
}
