package report

import (
	"fmt"
	"sort"
	"strings"

	"railstatus-service/internal/domain/entity"
)

func stationsInOrder(in []entity.RouteStation) []entity.RouteStation {
	out := append([]entity.RouteStation(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sequence < out[j].Sequence
	})
	return out
}

// ArrivalAtStation looks the station up in the current position, then the
// upcoming stops, then the passed stops, then the non-stop points of both
// lists. The first match wins. Codes compare case-insensitively.
func ArrivalAtStation(run *entity.TrainRunStatus, stationCode string) string {
	if run == nil {
		return TrainRunUnavailable
	}
	code := strings.ToUpper(strings.TrimSpace(stationCode))
	if code == "" {
		return "Station code is required"
	}

	if strings.EqualFold(run.CurrentStationCode, code) {
		ls := []string{
			fmt.Sprintf("Train is currently at/near %s (%s)", run.CurrentStationName, code),
			fmt.Sprintf("  Status: %s", orDefault(run.StatusAsOf, run.State.Label())),
		}
		if run.ETA != "" {
			ls = append(ls, fmt.Sprintf("  ETA: %s", run.ETA))
		}
		if run.DelayMinutes > 0 {
			ls = append(ls, "  "+FormatDelay(run.DelayMinutes))
		}
		return lines(ls)
	}

	for _, s := range run.Upcoming {
		if !strings.EqualFold(s.Code, code) {
			continue
		}
		ls := []string{fmt.Sprintf("Arrival at %s (%s):", s.Name, code)}
		if s.ScheduledArrival != "" {
			ls = append(ls, fmt.Sprintf("  Scheduled Arrival: %s", s.ScheduledArrival))
		}
		if s.ExpectedArrival != "" {
			ls = append(ls, fmt.Sprintf("  Expected Arrival: %s", s.ExpectedArrival))
		}
		if s.ArrivalDelay != 0 {
			ls = append(ls, "  "+FormatDelay(s.ArrivalDelay))
		}
		if s.HasPlatform() {
			ls = append(ls, fmt.Sprintf("  Platform: %s", s.Platform))
		}
		if s.DistanceFromCurrentText != "" {
			ls = append(ls, fmt.Sprintf("  Distance: %s", s.DistanceFromCurrentText))
		}
		return lines(ls)
	}

	for _, s := range run.Passed {
		if !strings.EqualFold(s.Code, code) {
			continue
		}
		ls := []string{fmt.Sprintf("Train has already passed %s (%s):", s.Name, code)}
		if s.ScheduledArrival != "" {
			ls = append(ls, fmt.Sprintf("  Scheduled Arrival: %s", s.ScheduledArrival))
		}
		if s.ExpectedArrival != "" {
			ls = append(ls, fmt.Sprintf("  Actual Arrival: %s", s.ExpectedArrival))
		}
		if s.ArrivalDelay != 0 {
			ls = append(ls, "  "+FormatDelay(s.ArrivalDelay))
		}
		if s.HasPlatform() {
			ls = append(ls, fmt.Sprintf("  Platform: %s", s.Platform))
		}
		return lines(ls)
	}

	for _, list := range [][]entity.RouteStation{run.Upcoming, run.Passed} {
		for _, s := range list {
			for _, ns := range s.NonStops {
				if strings.EqualFold(ns.Code, code) {
					return fmt.Sprintf("%s (%s) is a non-stop station. Train does not halt here.", ns.Name, code)
				}
			}
		}
	}

	return fmt.Sprintf("Station %s not found in the train's route", code)
}

// CurrentPosition renders where the train is, how far along it is and how late it runs.
func CurrentPosition(run *entity.TrainRunStatus) string {
	if run == nil {
		return TrainRunUnavailable
	}

	ls := []string{
		fmt.Sprintf("Current Train Position - %s:", stationLabel(run.TrainName, run.TrainNumber)),
		fmt.Sprintf("  Route: %s (%s) → %s (%s)", run.SourceName, run.SourceCode, run.DestinationName, run.DestinationCode),
		"",
		fmt.Sprintf("  Current Station: %s (%s)", run.CurrentStationName, run.CurrentStationCode),
		fmt.Sprintf("  Status: %s", run.State.Label()),
	}
	if run.TotalDistance > 0 {
		ls = append(ls,
			fmt.Sprintf("  Distance Covered: %d km / %d km", run.DistanceCovered, run.TotalDistance),
			fmt.Sprintf("  Progress: %.1f%%", run.ProgressPercent()),
		)
	} else {
		ls = append(ls, fmt.Sprintf("  Distance Covered: %d km", run.DistanceCovered))
	}
	if run.AheadDistanceText != "" {
		ls = append(ls, fmt.Sprintf("  Position: %s", run.AheadDistanceText))
	}
	if run.HasPlatform() {
		ls = append(ls, fmt.Sprintf("  Platform: %s", run.Platform))
	}

	switch hours, mins := run.DelayHoursMinutes(); {
	case run.DelayMinutes > 0 && hours > 0:
		ls = append(ls, fmt.Sprintf("  Delay: %dh %dm", hours, mins))
	case run.DelayMinutes > 0:
		ls = append(ls, fmt.Sprintf("  Delay: %d mins", mins))
	case run.DelayMinutes == 0:
		ls = append(ls, "  Running: On Time")
	default:
		ls = append(ls, "  Running: "+FormatDelay(run.DelayMinutes))
	}

	if next := run.NextStoppage; next != nil {
		ls = append(ls, "", fmt.Sprintf("  Next Stop: %s (%s)", next.Name, next.TimeToArrive))
		if next.DelayMinutes > 0 {
			ls = append(ls, "  Next Stop Delay: "+FormatDelay(next.DelayMinutes))
		}
	}

	if run.StatusAsOf != "" {
		ls = append(ls, "", "  "+run.StatusAsOf)
	}
	if run.UpdateTime != "" {
		ls = append(ls, "  Last Updated: "+run.UpdateTime)
	}
	return lines(ls)
}

type routeEntry struct {
	sequence int
	nonStop  bool
	name     string
	code     string
	current  bool
}

func (e routeEntry) String() string {
	switch {
	case e.current:
		return fmt.Sprintf(">>> %s (%s) <<<", e.name, e.code)
	case e.nonStop:
		return fmt.Sprintf("[%s] (%s)", e.name, e.code)
	default:
		return fmt.Sprintf("%s (%s)", e.name, e.code)
	}
}

// Route renders the whole route in sequence order with the current station
// marked. Output depends only on the sequence indexes, not on input order.
func Route(run *entity.TrainRunStatus, includeNonStops bool) string {
	if run == nil {
		return TrainRunUnavailable
	}
	if len(run.Passed) == 0 && len(run.Upcoming) == 0 {
		return NoRouteInformation
	}

	var entries []routeEntry
	add := func(stations []entity.RouteStation) {
		for _, s := range stations {
			// A copy of the current station is marked separately below, but its
			// non-stop points still belong to the route.
			if !s.IsPlaceholder() && !strings.EqualFold(s.Code, run.CurrentStationCode) {
				entries = append(entries, routeEntry{sequence: s.Sequence, name: s.Name, code: s.Code})
			}
			if !includeNonStops {
				continue
			}
			for _, ns := range s.NonStops {
				entries = append(entries, routeEntry{sequence: ns.Sequence, nonStop: true, name: ns.Name, code: ns.Code})
			}
		}
	}
	add(run.Passed)
	add(run.Upcoming)
	if run.CurrentStationCode != "" {
		entries = append(entries, routeEntry{
			sequence: run.CurrentSequence,
			name:     run.CurrentStationName,
			code:     run.CurrentStationCode,
			current:  true,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.sequence != b.sequence {
			return a.sequence < b.sequence
		}
		if a.current != b.current {
			return a.current
		}
		if a.nonStop != b.nonStop {
			return !a.nonStop
		}
		if a.code != b.code {
			return a.code < b.code
		}
		return a.name < b.name
	})

	tokens := make([]string, len(entries))
	for i, e := range entries {
		tokens[i] = e.String()
	}
	return strings.Join(tokens, " -> ")
}

// UpcomingStations lists up to limit upcoming halts in route order,
// followed by a count of the ones left out.
func UpcomingStations(run *entity.TrainRunStatus, limit int) string {
	if run == nil {
		return TrainRunUnavailable
	}
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	var stops []entity.RouteStation
	for _, s := range stationsInOrder(run.Upcoming) {
		if !s.IsPlaceholder() {
			stops = append(stops, s)
		}
	}
	if len(stops) == 0 {
		return NoUpcomingStations
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Upcoming Stations for %s:\n\n", stationLabel(run.TrainName, run.TrainNumber))

	shown := min(limit, len(stops))
	for i, s := range stops[:shown] {
		fmt.Fprintf(&b, "  %d. %s (%s)\n", i+1, s.Name, s.Code)
		switch {
		case s.ScheduledArrival != "" && s.ExpectedArrival != "":
			fmt.Fprintf(&b, "     Scheduled: %s | Expected: %s\n", s.ScheduledArrival, s.ExpectedArrival)
		case s.ScheduledArrival != "":
			fmt.Fprintf(&b, "     Scheduled: %s\n", s.ScheduledArrival)
		}
		if s.ArrivalDelay != 0 {
			fmt.Fprintf(&b, "     %s\n", FormatDelay(s.ArrivalDelay))
		}
		if s.HasPlatform() {
			fmt.Fprintf(&b, "     Platform: %s\n", s.Platform)
		}
		if s.DistanceFromCurrentText != "" {
			fmt.Fprintf(&b, "     %s\n", s.DistanceFromCurrentText)
		}
		if s.HaltMinutes > 0 {
			fmt.Fprintf(&b, "     Halt: %d min\n", s.HaltMinutes)
		}
		b.WriteString("\n")
	}

	if remaining := len(stops) - shown; remaining > 0 {
		fmt.Fprintf(&b, "  ... and %d more stations", remaining)
	}
	return strings.TrimRight(b.String(), "\n")
}

// TrainSummary is a short status card for chat-style replies.
func TrainSummary(run *entity.TrainRunStatus) string {
	if run == nil {
		return TrainRunUnavailable
	}

	ls := []string{
		stationLabel(run.TrainName, run.TrainNumber),
		fmt.Sprintf("%s → %s", run.SourceName, run.DestinationName),
		"",
	}

	if loc := run.Location; loc != nil && loc.StationName != "" {
		ls = append(ls, fmt.Sprintf("📍 %s %s", loc.MessageType, loc.StationName))
	} else {
		ls = append(ls, fmt.Sprintf("📍 Near %s", run.CurrentStationName))
	}

	switch hours, mins := run.DelayHoursMinutes(); {
	case run.DelayMinutes > 0 && hours > 0:
		ls = append(ls, fmt.Sprintf("⏱️ Running late by %dh %dm", hours, mins))
	case run.DelayMinutes > 0:
		ls = append(ls, fmt.Sprintf("⏱️ Running late by %d mins", mins))
	case run.DelayMinutes < 0:
		ls = append(ls, fmt.Sprintf("⏱️ Running early by %d mins", -run.DelayMinutes))
	default:
		ls = append(ls, "⏱️ Running on time")
	}

	if next := run.NextStoppage; next != nil {
		ls = append(ls, fmt.Sprintf("➡️ Next: %s %s", next.Name, next.TimeToArrive))
	}
	if run.StatusAsOf != "" {
		ls = append(ls, "", run.StatusAsOf)
	}
	return lines(ls)
}
