package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/internal/infrastructure/config"
	"railstatus-service/internal/infrastructure/httpclient"
	"railstatus-service/pkg/logger"
	"railstatus-service/pkg/metrics"
	"railstatus-service/pkg/utils"
)

// LegacyTrainRepository reads live status from the older route-list API,
// which reports unix timestamps and delays in seconds.
type LegacyTrainRepository struct {
	client  *http.Client
	baseURL string
	now     func() time.Time
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewLegacyTrainRepository creates a new legacy live status repository
func NewLegacyTrainRepository(cfg *config.Config, client *http.Client, m *metrics.Metrics, logger logger.Logger) *LegacyTrainRepository {
	return &LegacyTrainRepository{
		client:  client,
		baseURL: strings.TrimRight(cfg.LegacyStatusAPIBase, "/"),
		now:     time.Now,
		metrics: m,
		logger:  logger.With("upstream", upstreamLegacyLive),
	}
}

// CanHandle reports whether this adapter serves the named provider
func (r *LegacyTrainRepository) CanHandle(name string) bool {
	return name == config.TrainProviderLegacy
}

type legacyPosition struct {
	StationCode          string  `json:"stationCode"`
	Status               int     `json:"status"`
	DistanceFromOriginKm float64 `json:"distanceFromOriginKm"`
}

type legacyRouteStation struct {
	PlatformNumber              flexString `json:"platformNumber"`
	StationCode                 string     `json:"stationCode"`
	StationName                 string     `json:"station_name"`
	StopIndex                   int        `json:"stopIndex"`
	ScheduledArrivalTime        int64      `json:"scheduledArrivalTime"`
	ScheduledDepartureTime      int64      `json:"scheduledDepartureTime"`
	ActualArrivalTime           int64      `json:"actualArrivalTime"`
	ActualDepartureTime         int64      `json:"actualDepartureTime"`
	ScheduledArrivalDelaySecs   *int       `json:"scheduledArrivalDelaySecs"`
	ScheduledDepartureDelaySecs *int       `json:"scheduledDepartureDelaySecs"`
}

type legacyStatusData struct {
	CurrentPosition      legacyPosition       `json:"currentPosition"`
	ArrivalStatus        string               `json:"arrivalStatus"`
	LastUpdatedTimestamp int64                `json:"lastUpdatedTimestamp"`
	Route                []legacyRouteStation `json:"route"`
}

type legacyStatusResponse struct {
	Success bool              `json:"success"`
	Data    *legacyStatusData `json:"data"`
}

// legacyStates maps the numeric position status. A train that has not left
// its origin is reported as standing at that station.
var legacyStates = map[int]entity.RunState{
	0: entity.RunStateAtStation,
	1: entity.RunStateInTransit,
	2: entity.RunStateAtStation,
	3: entity.RunStateArrived,
}

// FetchTrainRun fetches the run that started startDay days ago
func (r *LegacyTrainRepository) FetchTrainRun(ctx context.Context, trainNumber string, startDay int) (run *entity.TrainRunStatus, err error) {
	start := time.Now()
	defer func() {
		r.metrics.ObserveUpstream(upstreamLegacyLive, start, err)
		r.logger.Info("Train run fetched", "train", trainNumber, "startDay", startDay,
			"latency", time.Since(start), "error", err)
	}()

	runDate := utils.DateOf(r.now()).AddDate(0, 0, -startDay)

	params := url.Values{}
	params.Set("trainNo", trainNumber)
	params.Set("date", runDate.Format(utils.LEGACY_DATE_LAYOUT))
	endpoint := fmt.Sprintf("%s/trains/live-status?%s", r.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, unavailable("create request", err)
	}

	resp, err := httpclient.DoJSON[legacyStatusResponse](r.client, req)
	if err != nil {
		return nil, unavailable("fetch train status", err)
	}
	if !resp.Success || resp.Data == nil || len(resp.Data.Route) == 0 {
		return nil, unavailablef("no live status for train %s", trainNumber)
	}

	return toTrainRunFromLegacy(trainNumber, runDate, resp.Data), nil
}

func toTrainRunFromLegacy(trainNumber string, runDate time.Time, d *legacyStatusData) *entity.TrainRunStatus {
	route := append([]legacyRouteStation(nil), d.Route...)
	sort.SliceStable(route, func(i, j int) bool {
		return route[i].StopIndex < route[j].StopIndex
	})

	first, last := route[0], route[len(route)-1]
	run := &entity.TrainRunStatus{
		TrainNumber:     trainNumber,
		StartDate:       runDate.Format(utils.ISO_DATE_LAYOUT),
		SourceCode:      first.StationCode,
		SourceName:      first.StationName,
		DestinationCode: last.StationCode,
		DestinationName: last.StationName,
		State:           legacyStates[d.CurrentPosition.Status],
		DistanceCovered: int(d.CurrentPosition.DistanceFromOriginKm),
	}
	if run.State == "" {
		run.State = entity.RunStateInTransit
	}
	if d.LastUpdatedTimestamp > 0 {
		updated := time.Unix(d.LastUpdatedTimestamp, 0).In(utils.IST)
		run.StatusAsOf = "As of " + updated.Format("02-Jan 15:04")
		run.UpdateTime = updated.Format("2006-01-02 15:04:05")
	}

	currentIdx := -1
	for i, s := range route {
		if strings.EqualFold(s.StationCode, d.CurrentPosition.StationCode) {
			currentIdx = i
			break
		}
	}

	for i, s := range route {
		station := toLegacyRouteStation(s)
		switch {
		case i == currentIdx:
			run.CurrentStationCode = station.Code
			run.CurrentStationName = station.Name
			run.CurrentSequence = station.Sequence
			run.ETA = station.ExpectedArrival
			run.ETD = station.ExpectedDeparture
			run.DelayMinutes = station.ArrivalDelay
			run.Platform = station.Platform
		case currentIdx >= 0 && i < currentIdx:
			run.Passed = append(run.Passed, station)
		case currentIdx < 0 && s.ActualDepartureTime != 0:
			run.Passed = append(run.Passed, station)
		default:
			run.Upcoming = append(run.Upcoming, station)
		}
	}

	if currentIdx < 0 {
		run.CurrentStationCode = d.CurrentPosition.StationCode
		run.CurrentStationName = d.CurrentPosition.StationCode
		if n := len(run.Passed); n > 0 {
			run.CurrentSequence = run.Passed[n-1].Sequence
			run.DelayMinutes = run.Passed[n-1].ArrivalDelay
		}
	}

	if len(run.Upcoming) > 0 {
		next := run.Upcoming[0]
		run.NextStoppage = &entity.NextStoppage{
			Name:         next.Name,
			TimeToArrive: next.ExpectedArrival,
			DelayMinutes: next.ArrivalDelay,
		}
	}

	return run
}

func toLegacyRouteStation(s legacyRouteStation) entity.RouteStation {
	station := entity.RouteStation{
		Sequence:           s.StopIndex,
		Code:               strings.TrimSpace(s.StationCode),
		Name:               s.StationName,
		ScheduledArrival:   utils.ClockIST(s.ScheduledArrivalTime),
		ScheduledDeparture: utils.ClockIST(s.ScheduledDepartureTime),
		ExpectedArrival:    utils.ClockIST(s.ActualArrivalTime),
		ExpectedDeparture:  utils.ClockIST(s.ActualDepartureTime),
		Platform:           s.PlatformNumber.String(),
	}
	if s.ScheduledArrivalDelaySecs != nil {
		station.ArrivalDelay = floorMinutes(*s.ScheduledArrivalDelaySecs)
	}
	if s.ScheduledArrivalTime > 0 && s.ScheduledDepartureTime > s.ScheduledArrivalTime {
		station.HaltMinutes = int((s.ScheduledDepartureTime - s.ScheduledArrivalTime) / 60)
	}
	return station
}

// floorMinutes rounds toward negative infinity, so 90s early is 2 minutes early.
func floorMinutes(secs int) int {
	mins := secs / 60
	if secs%60 != 0 && secs < 0 {
		mins--
	}
	return mins
}
