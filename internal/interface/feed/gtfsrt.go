// Package feed exports a live train run as a GTFS-Realtime feed.
package feed

import (
	"sort"
	"strings"
	"time"

	"railstatus-service/internal/domain/entity"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

// Encodings accepted by Marshal.
const (
	Binary        = false
	HumanReadable = true
)

// BuildTripUpdateFeed wraps one run in a feed holding a TripUpdate entity
// and a VehiclePosition entity. Stop times carry delays only, since the
// upstream reports bare wall clocks without a date.
func BuildTripUpdateFeed(run *entity.TrainRunStatus, now time.Time) *gtfs.FeedMessage {
	g := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: ptr("2.0"),
			Incrementality:      ptr(gtfs.FeedHeader_FULL_DATASET),
			Timestamp:           ptr(uint64(now.Unix())),
		},
	}
	if run == nil {
		return g
	}

	id := entityID(run)
	g.Entity = []*gtfs.FeedEntity{
		{Id: ptr(id), TripUpdate: tripUpdate(run)},
		{Id: ptr(id + "_vehicle"), Vehicle: vehiclePosition(run, now)},
	}
	return g
}

// Marshal encodes the feed as protobuf, or as prototext when humanReadable is set.
func Marshal(g *gtfs.FeedMessage, humanReadable bool) ([]byte, error) {
	if humanReadable {
		return prototext.Marshal(g)
	}
	return proto.Marshal(g)
}

func entityID(run *entity.TrainRunStatus) string {
	if date := gtfsDate(run.StartDate); date != "" {
		return run.TrainNumber + "_" + date
	}
	return run.TrainNumber
}

// gtfsDate turns "2006-01-02" into the YYYYMMDD form GTFS expects.
func gtfsDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(isoDate))
	if err != nil {
		return ""
	}
	return t.Format("20060102")
}

func tripDescriptor(run *entity.TrainRunStatus) *gtfs.TripDescriptor {
	d := &gtfs.TripDescriptor{
		TripId:               ptr(run.TrainNumber),
		ScheduleRelationship: ptr(gtfs.TripDescriptor_SCHEDULED),
	}
	if date := gtfsDate(run.StartDate); date != "" {
		d.StartDate = ptr(date)
	}
	return d
}

type stop struct {
	sequence int
	code     string
	delay    int
	passed   bool
	halts    bool
}

func tripUpdate(run *entity.TrainRunStatus) *gtfs.TripUpdate {
	var stops []stop
	for _, s := range run.Passed {
		if !s.IsPlaceholder() && !strings.EqualFold(s.Code, run.CurrentStationCode) {
			stops = append(stops, stop{s.Sequence, s.Code, s.ArrivalDelay, true, s.HaltMinutes > 0})
		}
	}
	if run.CurrentStationCode != "" {
		stops = append(stops, stop{run.CurrentSequence, run.CurrentStationCode, run.DelayMinutes, false, true})
	}
	for _, s := range run.Upcoming {
		if !s.IsPlaceholder() && !strings.EqualFold(s.Code, run.CurrentStationCode) {
			stops = append(stops, stop{s.Sequence, s.Code, s.ArrivalDelay, false, s.HaltMinutes > 0})
		}
	}
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].sequence < stops[j].sequence
	})

	u := &gtfs.TripUpdate{
		Trip:  tripDescriptor(run),
		Delay: ptr(int32(run.DelayMinutes * 60)),
	}
	u.StopTimeUpdate = make([]*gtfs.TripUpdate_StopTimeUpdate, len(stops))
	for i, s := range stops {
		u.StopTimeUpdate[i] = s.AsGTFS()
	}
	return u
}

func (s stop) AsGTFS() *gtfs.TripUpdate_StopTimeUpdate {
	uncertainty := int32(1)
	if s.passed {
		uncertainty = 0
	}

	event := &gtfs.TripUpdate_StopTimeEvent{
		Delay:       ptr(int32(s.delay * 60)),
		Uncertainty: ptr(uncertainty),
	}
	g := &gtfs.TripUpdate_StopTimeUpdate{
		StopSequence:         ptr(uint32(s.sequence)),
		StopId:               ptr(s.code),
		ScheduleRelationship: ptr(gtfs.TripUpdate_StopTimeUpdate_SCHEDULED),
		Arrival:              event,
	}
	if s.halts {
		g.Departure = &gtfs.TripUpdate_StopTimeEvent{
			Delay:       ptr(int32(s.delay * 60)),
			Uncertainty: ptr(uncertainty),
		}
	}
	return g
}

func vehiclePosition(run *entity.TrainRunStatus, now time.Time) *gtfs.VehiclePosition {
	status := gtfs.VehiclePosition_IN_TRANSIT_TO
	switch run.State {
	case entity.RunStateArrived, entity.RunStateAtStation:
		status = gtfs.VehiclePosition_STOPPED_AT
	}

	v := &gtfs.VehiclePosition{
		Trip:          tripDescriptor(run),
		Vehicle:       &gtfs.VehicleDescriptor{Id: ptr(run.TrainNumber), Label: ptr(run.TrainName)},
		CurrentStatus: ptr(status),
		Timestamp:     ptr(uint64(now.Unix())),
	}
	if run.CurrentStationCode != "" {
		v.StopId = ptr(run.CurrentStationCode)
		v.CurrentStopSequence = ptr(uint32(run.CurrentSequence))
	}
	return v
}

func ptr[T any](thing T) *T {
	return &thing
}
