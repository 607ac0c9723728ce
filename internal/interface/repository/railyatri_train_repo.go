package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/internal/infrastructure/config"
	"railstatus-service/internal/infrastructure/httpclient"
	"railstatus-service/pkg/logger"
	"railstatus-service/pkg/metrics"
)

// RailYatriTrainRepository reads live running status from the flat RailYatri JSON API.
type RailYatriTrainRepository struct {
	client  *http.Client
	baseURL string
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewRailYatriTrainRepository creates a new live status repository
func NewRailYatriTrainRepository(cfg *config.Config, client *http.Client, m *metrics.Metrics, logger logger.Logger) *RailYatriTrainRepository {
	return &RailYatriTrainRepository{
		client:  client,
		baseURL: strings.TrimRight(cfg.TrainStatusAPIBase, "/"),
		metrics: m,
		logger:  logger.With("upstream", upstreamRailYatri),
	}
}

// CanHandle reports whether this adapter serves the named provider
func (r *RailYatriTrainRepository) CanHandle(name string) bool {
	return name == config.TrainProviderRailYatri
}

type railYatriNonStop struct {
	SiNo               int    `json:"si_no"`
	StationCode        string `json:"station_code"`
	StationName        string `json:"station_name"`
	DistanceFromSource int    `json:"distance_from_source"`
	Sta                string `json:"sta"`
	Std                string `json:"std"`
}

// railYatriStation covers both upcoming_stations and previous_stations entries.
type railYatriStation struct {
	SiNo                          int                `json:"si_no"`
	StationCode                   string             `json:"station_code"`
	StationName                   string             `json:"station_name"`
	DistanceFromSource            int                `json:"distance_from_source"`
	DistanceFromCurrentStationTxt string             `json:"distance_from_current_station_txt"`
	Sta                           string             `json:"sta"`
	Std                           string             `json:"std"`
	Eta                           string             `json:"eta"`
	Etd                           string             `json:"etd"`
	Halt                          int                `json:"halt"`
	ArrivalDelay                  int                `json:"arrival_delay"`
	PlatformNumber                flexString         `json:"platform_number"`
	NonStops                      []railYatriNonStop `json:"non_stops"`
}

type railYatriBubble struct {
	StationName string `json:"station_name"`
	MessageType string `json:"message_type"`
	StationTime string `json:"station_time"`
}

type railYatriNextStoppage struct {
	NextStoppageTitle    string `json:"next_stoppage_title"`
	NextStoppage         string `json:"next_stoppage"`
	NextStoppageTimeDiff string `json:"next_stoppage_time_diff"`
	NextStoppageDelay    int    `json:"next_stoppage_delay"`
}

type railYatriResponse struct {
	Success            bool                   `json:"success"`
	TrainNumber        string                 `json:"train_number"`
	TrainName          string                 `json:"train_name"`
	TrainStartDate     string                 `json:"train_start_date"`
	Source             string                 `json:"source"`
	Destination        string                 `json:"destination"`
	SourceStnName      string                 `json:"source_stn_name"`
	DestStnName        string                 `json:"dest_stn_name"`
	PantryAvailable    bool                   `json:"pantry_available"`
	UpdateTime         string                 `json:"update_time"`
	DistanceFromSource int                    `json:"distance_from_source"`
	TotalDistance      int                    `json:"total_distance"`
	SiNo               int                    `json:"si_no"`
	CurrentStationCode string                 `json:"current_station_code"`
	CurrentStationName string                 `json:"current_station_name"`
	Status             string                 `json:"status"`
	Eta                string                 `json:"eta"`
	Etd                string                 `json:"etd"`
	Delay              int                    `json:"delay"`
	AheadDistanceText  string                 `json:"ahead_distance_text"`
	StatusAsOf         string                 `json:"status_as_of"`
	PlatformNumber     flexString             `json:"platform_number"`
	UpcomingStations   []railYatriStation     `json:"upcoming_stations"`
	PreviousStations   []railYatriStation     `json:"previous_stations"`
	BubbleMessage      *railYatriBubble       `json:"bubble_message"`
	NextStoppageInfo   *railYatriNextStoppage `json:"next_stoppage_info"`
}

// FetchTrainRun fetches the run that started startDay days ago
func (r *RailYatriTrainRepository) FetchTrainRun(ctx context.Context, trainNumber string, startDay int) (run *entity.TrainRunStatus, err error) {
	start := time.Now()
	defer func() {
		r.metrics.ObserveUpstream(upstreamRailYatri, start, err)
		r.logger.Info("Train run fetched", "train", trainNumber, "startDay", startDay,
			"latency", time.Since(start), "error", err)
	}()

	params := url.Values{}
	params.Set("start_day", strconv.Itoa(startDay))
	endpoint := fmt.Sprintf("%s/%s/json?%s", r.baseURL, url.PathEscape(trainNumber), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, unavailable("create request", err)
	}

	resp, err := httpclient.DoJSON[railYatriResponse](r.client, req)
	if err != nil {
		return nil, unavailable("fetch train status", err)
	}
	if !resp.Success || resp.TrainNumber == "" {
		return nil, unavailablef("no live status for train %s", trainNumber)
	}

	return toTrainRunFromRailYatri(resp), nil
}

func toTrainRunFromRailYatri(d *railYatriResponse) *entity.TrainRunStatus {
	run := &entity.TrainRunStatus{
		TrainNumber:        d.TrainNumber,
		TrainName:          d.TrainName,
		StartDate:          d.TrainStartDate,
		SourceCode:         d.Source,
		SourceName:         d.SourceStnName,
		DestinationCode:    d.Destination,
		DestinationName:    d.DestStnName,
		CurrentStationCode: d.CurrentStationCode,
		CurrentStationName: d.CurrentStationName,
		CurrentSequence:    d.SiNo,
		State:              entity.RunState(strings.ToUpper(strings.TrimSpace(d.Status))),
		ETA:                d.Eta,
		ETD:                d.Etd,
		DelayMinutes:       d.Delay,
		DistanceCovered:    d.DistanceFromSource,
		TotalDistance:      d.TotalDistance,
		AheadDistanceText:  d.AheadDistanceText,
		Platform:           d.PlatformNumber.String(),
		StatusAsOf:         d.StatusAsOf,
		UpdateTime:         d.UpdateTime,
		PantryAvailable:    d.PantryAvailable,
		Passed:             toRouteStations(d.PreviousStations),
		Upcoming:           toRouteStations(d.UpcomingStations),
	}

	if d.NextStoppageInfo != nil {
		run.NextStoppage = &entity.NextStoppage{
			Title:        d.NextStoppageInfo.NextStoppageTitle,
			Name:         d.NextStoppageInfo.NextStoppage,
			TimeToArrive: d.NextStoppageInfo.NextStoppageTimeDiff,
			DelayMinutes: d.NextStoppageInfo.NextStoppageDelay,
		}
	}
	if d.BubbleMessage != nil {
		run.Location = &entity.LocationMessage{
			StationName: d.BubbleMessage.StationName,
			MessageType: d.BubbleMessage.MessageType,
			StationTime: d.BubbleMessage.StationTime,
		}
	}

	return run
}

func toRouteStations(in []railYatriStation) []entity.RouteStation {
	out := make([]entity.RouteStation, 0, len(in))
	for _, s := range in {
		station := entity.RouteStation{
			Sequence:                s.SiNo,
			Code:                    strings.TrimSpace(s.StationCode),
			Name:                    s.StationName,
			ScheduledArrival:        s.Sta,
			ScheduledDeparture:      s.Std,
			ExpectedArrival:         s.Eta,
			ExpectedDeparture:       s.Etd,
			ArrivalDelay:            s.ArrivalDelay,
			HaltMinutes:             s.Halt,
			Platform:                s.PlatformNumber.String(),
			DistanceFromSource:      s.DistanceFromSource,
			DistanceFromCurrentText: s.DistanceFromCurrentStationTxt,
		}
		for _, ns := range s.NonStops {
			station.NonStops = append(station.NonStops, entity.NonStopStation{
				Sequence:           ns.SiNo,
				Code:               strings.TrimSpace(ns.StationCode),
				Name:               ns.StationName,
				DistanceFromSource: ns.DistanceFromSource,
				ScheduledArrival:   ns.Sta,
				ScheduledDeparture: ns.Std,
			})
		}
		out = append(out, station)
	}
	return out
}
