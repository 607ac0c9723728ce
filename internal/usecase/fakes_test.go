package usecase

import (
	"context"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/pkg/logger"
)

var testLogger = logger.NewNopLogger()

type fakePNRRepo struct {
	record *entity.PNRRecord
	err    error
	calls  int
}

func (f *fakePNRRepo) FetchPNR(ctx context.Context, pnr string) (*entity.PNRRecord, error) {
	f.calls++
	return f.record, f.err
}

type fakeTrainRepo struct {
	run         *entity.TrainRunStatus
	err         error
	calls       int
	gotTrain    string
	gotStartDay int
}

func (f *fakeTrainRepo) FetchTrainRun(ctx context.Context, trainNumber string, startDay int) (*entity.TrainRunStatus, error) {
	f.calls++
	f.gotTrain, f.gotStartDay = trainNumber, startDay
	return f.run, f.err
}

type fakeSearchRepo struct {
	stations []entity.StationMatch
	trains   []entity.TrainMatch
	err      error
	gotLimit int
}

func (f *fakeSearchRepo) SearchStations(ctx context.Context, query string, limit int) ([]entity.StationMatch, error) {
	f.gotLimit = limit
	return f.stations, f.err
}

func (f *fakeSearchRepo) SearchTrains(ctx context.Context, query string, limit int) ([]entity.TrainMatch, error) {
	f.gotLimit = limit
	return f.trains, f.err
}

func samplePNR() *entity.PNRRecord {
	return &entity.PNRRecord{
		PNR:                 "8341223680",
		TrainNumber:         "12618",
		TrainName:           "MANGALA LAKSHADWEEP EXP",
		SourceCode:          "NZM",
		DestinationCode:     "ERS",
		JourneyDate:         "21-12-2025",
		SourceDepartureDate: "20-12-2025",
		JourneyClass:        "3A",
		Quota:               "GN",
		PassengerCount:      2,
		Passengers: []entity.PassengerRecord{
			{Number: 1, BookingStatus: "CNF", CurrentStatus: "CNF", Coach: "B1", BerthNumber: 25, BerthCode: "LB"},
			{Number: 2, BookingStatus: "RAC", CurrentStatus: "RAC", Coach: "S4", BerthNumber: 33, BerthCode: "SL"},
		},
	}
}

func sampleRun() *entity.TrainRunStatus {
	return &entity.TrainRunStatus{
		TrainNumber:        "12618",
		TrainName:          "Mangala Lakshadweep Express",
		StartDate:          "2025-12-20",
		SourceCode:         "NZM",
		SourceName:         "Hazrat Nizamuddin",
		DestinationCode:    "ERS",
		DestinationName:    "Ernakulam Jn",
		CurrentStationCode: "BPL",
		CurrentStationName: "Bhopal Jn",
		CurrentSequence:    14,
		State:              entity.RunStateInTransit,
		DelayMinutes:       67,
		DistanceCovered:    1102,
		TotalDistance:      2845,
		StatusAsOf:         "As of 2 mins ago",
		Upcoming: []entity.RouteStation{
			{Sequence: 16, Code: "ET", Name: "Itarsi Jn", ScheduledArrival: "12:45", ExpectedArrival: "13:52", ArrivalDelay: 67},
		},
	}
}
