// internal/domain/entity/train_run.go
package entity

// RunState is the position tag reported for a running train.
type RunState string

const (
	RunStateInTransit RunState = "T"
	RunStateArrived   RunState = "A"
	RunStateDeparted  RunState = "D"
	RunStateAtStation RunState = "S"
)

var runStateLabels = map[RunState]string{
	RunStateInTransit: "In Transit",
	RunStateArrived:   "Arrived",
	RunStateDeparted:  "Departed",
	RunStateAtStation: "At Station",
}

// Label returns the display name, or the raw tag when it is not one of the four known states.
func (s RunState) Label() string {
	if label, ok := runStateLabels[s]; ok {
		return label
	}
	return string(s)
}

// NonStopStation is a point the train passes without halting.
type NonStopStation struct {
	Sequence           int    `json:"sequence"`
	Code               string `json:"code"`
	Name               string `json:"name"`
	DistanceFromSource int    `json:"distanceFromSource"`
	ScheduledArrival   string `json:"scheduledArrival,omitempty"`
	ScheduledDeparture string `json:"scheduledDeparture,omitempty"`
}

// RouteStation is a halt on the route, passed or upcoming.
type RouteStation struct {
	Sequence                int              `json:"sequence"`
	Code                    string           `json:"code"` // empty for upstream placeholders
	Name                    string           `json:"name"`
	ScheduledArrival        string           `json:"scheduledArrival,omitempty"`
	ScheduledDeparture      string           `json:"scheduledDeparture,omitempty"`
	ExpectedArrival         string           `json:"expectedArrival,omitempty"`
	ExpectedDeparture       string           `json:"expectedDeparture,omitempty"`
	ArrivalDelay            int              `json:"arrivalDelay"`
	HaltMinutes             int              `json:"haltMinutes"`
	Platform                string           `json:"platform,omitempty"`
	DistanceFromSource      int              `json:"distanceFromSource"`
	DistanceFromCurrentText string           `json:"distanceFromCurrentText,omitempty"`
	NonStops                []NonStopStation `json:"nonStops,omitempty"`
}

// IsPlaceholder reports whether the upstream sent an entry without a station code.
func (s RouteStation) IsPlaceholder() bool {
	return s.Code == ""
}

// HasPlatform reports whether a platform number is known.
func (s RouteStation) HasPlatform() bool {
	return s.Platform != "" && s.Platform != "0"
}

// NextStoppage summarizes the next halt as the upstream reports it.
type NextStoppage struct {
	Title        string `json:"title,omitempty"`
	Name         string `json:"name"`
	TimeToArrive string `json:"timeToArrive"`
	DelayMinutes int    `json:"delayMinutes"`
}

// LocationMessage is the short "Departed from X" style bubble shown in apps.
type LocationMessage struct {
	StationName string `json:"stationName"`
	MessageType string `json:"messageType"`
	StationTime string `json:"stationTime,omitempty"`
}

// TrainRunStatus is one physical run of a train, identified by number and start date.
type TrainRunStatus struct {
	TrainNumber     string `json:"trainNumber"`
	TrainName       string `json:"trainName"`
	StartDate       string `json:"startDate"` // YYYY-MM-DD
	SourceCode      string `json:"sourceCode"`
	SourceName      string `json:"sourceName"`
	DestinationCode string `json:"destinationCode"`
	DestinationName string `json:"destinationName"`

	CurrentStationCode string   `json:"currentStationCode"`
	CurrentStationName string   `json:"currentStationName"`
	CurrentSequence    int      `json:"currentSequence"`
	State              RunState `json:"state"`
	ETA                string   `json:"eta,omitempty"`
	ETD                string   `json:"etd,omitempty"`
	DelayMinutes       int      `json:"delayMinutes"` // positive late, negative early
	DistanceCovered    int      `json:"distanceCovered"`
	TotalDistance      int      `json:"totalDistance"`
	AheadDistanceText  string   `json:"aheadDistanceText,omitempty"`
	Platform           string   `json:"platform,omitempty"`
	StatusAsOf         string   `json:"statusAsOf"`
	UpdateTime         string   `json:"updateTime,omitempty"`
	PantryAvailable    bool     `json:"pantryAvailable"`

	Passed       []RouteStation   `json:"passed"`
	Upcoming     []RouteStation   `json:"upcoming"`
	NextStoppage *NextStoppage    `json:"nextStoppage,omitempty"`
	Location     *LocationMessage `json:"location,omitempty"`
}

// ProgressPercent returns covered/total as a percentage, 0 when the total is unknown.
func (r *TrainRunStatus) ProgressPercent() float64 {
	if r.TotalDistance == 0 {
		return 0
	}
	return float64(r.DistanceCovered) / float64(r.TotalDistance) * 100
}

// DelayHoursMinutes splits the signed delay into hours and minutes.
// Only meaningful for a non-negative delay.
func (r *TrainRunStatus) DelayHoursMinutes() (int, int) {
	return r.DelayMinutes / 60, r.DelayMinutes % 60
}

// RemainingDistance returns the kilometres left on the route.
func (r *TrainRunStatus) RemainingDistance() int {
	return r.TotalDistance - r.DistanceCovered
}

// HasPlatform reports whether the platform at the current station is known.
func (r *TrainRunStatus) HasPlatform() bool {
	return r.Platform != "" && r.Platform != "0"
}
