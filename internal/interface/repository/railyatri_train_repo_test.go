package repository

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"railstatus-service/internal/domain/entity"
)

const railYatriPayload = `{
  "success": true,
  "train_number": "12618",
  "train_name": "Mangala Lakshadweep Express",
  "train_start_date": "2025-12-20",
  "source": "NZM",
  "destination": "ERS",
  "source_stn_name": "Hazrat Nizamuddin",
  "dest_stn_name": "Ernakulam Jn",
  "pantry_available": true,
  "update_time": "2025-12-21T11:02:00+05:30",
  "distance_from_source": 1102,
  "total_distance": 2845,
  "si_no": 14,
  "current_station_code": "BPL",
  "current_station_name": "Bhopal Jn",
  "status": "t",
  "eta": "11:20",
  "etd": "11:30",
  "delay": 67,
  "ahead_distance_text": "12 km ahead of Bhopal Jn",
  "status_as_of": "As of 2 mins ago",
  "platform_number": 0,
  "previous_stations": [
    {"si_no": 1, "station_code": "NZM", "station_name": "Hazrat Nizamuddin", "distance_from_source": 0, "sta": "", "std": "05:30", "eta": "", "etd": "05:42", "arrival_delay": 0, "platform_number": "5"}
  ],
  "upcoming_stations": [
    {"si_no": 15, "station_code": "", "station_name": "", "distance_from_source": 0},
    {"si_no": 16, "station_code": "ET ", "station_name": "Itarsi Jn", "distance_from_source": 1194,
     "distance_from_current_station_txt": "92 km from current station",
     "sta": "12:45", "std": "12:55", "eta": "13:52", "etd": "14:02", "halt": 10, "arrival_delay": 67, "platform_number": 2,
     "non_stops": [
       {"si_no": 1, "station_code": "HBJ", "station_name": "Habibganj", "distance_from_source": 1108, "sta": "11:40", "std": "11:40"}
     ]}
  ],
  "bubble_message": {"station_name": "Bhopal Jn", "message_type": "Crossed", "station_time": "11:20"},
  "next_stoppage_info": {"next_stoppage_title": "Next Stoppage", "next_stoppage": "Itarsi Jn", "next_stoppage_time_diff": "2h 30m", "next_stoppage_delay": 67}
}`

func TestRailYatriFetchTrainRun(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/live/12618/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("start_day"); got != "1" {
			t.Errorf("expected start_day=1, got %q", got)
		}
		w.Write([]byte(railYatriPayload))
	})

	repo := NewRailYatriTrainRepository(testConfig(srv.URL), testClient, nil, testLogger)
	run, err := repo.FetchTrainRun(context.Background(), "12618", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if run.State != entity.RunStateInTransit {
		t.Errorf("expected state T, got %q", run.State)
	}
	if run.DelayMinutes != 67 || run.CurrentSequence != 14 || run.TotalDistance != 2845 {
		t.Errorf("unexpected run: %+v", run)
	}
	if run.Platform != "0" {
		t.Errorf("expected numeric platform to decode as \"0\", got %q", run.Platform)
	}
	if len(run.Passed) != 1 || len(run.Upcoming) != 2 {
		t.Fatalf("expected 1 passed and 2 upcoming, got %d and %d", len(run.Passed), len(run.Upcoming))
	}
	if !run.Upcoming[0].IsPlaceholder() {
		t.Error("expected first upcoming entry to be a placeholder")
	}

	itarsi := run.Upcoming[1]
	if itarsi.Code != "ET" || itarsi.Platform != "2" || itarsi.HaltMinutes != 10 {
		t.Errorf("unexpected station: %+v", itarsi)
	}
	if len(itarsi.NonStops) != 1 || itarsi.NonStops[0].Code != "HBJ" {
		t.Errorf("expected HBJ non-stop, got %+v", itarsi.NonStops)
	}
	if run.NextStoppage == nil || run.NextStoppage.Name != "Itarsi Jn" {
		t.Errorf("unexpected next stoppage: %+v", run.NextStoppage)
	}
	if run.Location == nil || run.Location.MessageType != "Crossed" {
		t.Errorf("unexpected location: %+v", run.Location)
	}
}

func TestRailYatriFetchTrainRunUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"success false", http.StatusOK, `{"success": false}`},
		{"empty train number", http.StatusOK, `{"success": true, "train_number": ""}`},
		{"not found", http.StatusNotFound, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.payload))
			})

			repo := NewRailYatriTrainRepository(testConfig(srv.URL), testClient, nil, testLogger)
			if _, err := repo.FetchTrainRun(context.Background(), "12618", 0); !errors.Is(err, entity.ErrUnavailable) {
				t.Errorf("expected ErrUnavailable, got %v", err)
			}
		})
	}
}
