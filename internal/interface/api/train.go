package api

import (
	"railstatus-service/internal/interface/feed"

	"github.com/gofiber/fiber/v2"
)

const startDayMessage = "start_day must be a whole number of days."

func parseStartDay(c *fiber.Ctx) (int, bool) {
	return queryInt(c, "start_day", 0)
}

// GetLiveStatus reports the current position of a train
func (s *APIServer) GetLiveStatus(c *fiber.Ctx) error {
	startDay, ok := parseStartDay(c)
	if !ok {
		return badRequest(c, startDayMessage)
	}
	report, err := s.Trains.LiveStatus(c.UserContext(), c.Params("number"), startDay)
	return s.result(c, report, err)
}

// GetRoute lists the route, with non-stop points when non_stops=true
func (s *APIServer) GetRoute(c *fiber.Ctx) error {
	startDay, ok := parseStartDay(c)
	if !ok {
		return badRequest(c, startDayMessage)
	}
	report, err := s.Trains.CompleteRoute(c.UserContext(), c.Params("number"), startDay, c.QueryBool("non_stops", false))
	return s.result(c, report, err)
}

// GetUpcoming lists the next halts, limit at a time
func (s *APIServer) GetUpcoming(c *fiber.Ctx) error {
	startDay, ok := parseStartDay(c)
	if !ok {
		return badRequest(c, startDayMessage)
	}
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return badRequest(c, "limit must be a whole number.")
	}
	report, err := s.Trains.NextStations(c.UserContext(), c.Params("number"), startDay, limit)
	return s.result(c, report, err)
}

// GetTrainSummary returns the short status card
func (s *APIServer) GetTrainSummary(c *fiber.Ctx) error {
	startDay, ok := parseStartDay(c)
	if !ok {
		return badRequest(c, startDayMessage)
	}
	report, err := s.Trains.BriefSummary(c.UserContext(), c.Params("number"), startDay)
	return s.result(c, report, err)
}

// GetArrival reports the expected arrival at one station
func (s *APIServer) GetArrival(c *fiber.Ctx) error {
	startDay, ok := parseStartDay(c)
	if !ok {
		return badRequest(c, startDayMessage)
	}
	report, err := s.Trains.ArrivalAtStation(c.UserContext(), c.Params("number"), c.Params("station"), startDay)
	return s.result(c, report, err)
}

// GetFeed exports the run as GTFS-Realtime. format=text selects prototext.
func (s *APIServer) GetFeed(c *fiber.Ctx) error {
	startDay, ok := parseStartDay(c)
	if !ok {
		return badRequest(c, startDayMessage)
	}

	g, err := s.Trains.Feed(c.UserContext(), c.Params("number"), startDay)
	if err != nil {
		return s.fail(c, err)
	}

	humanReadable := c.Query("format") == "text"
	body, err := feed.Marshal(g, humanReadable)
	if err != nil {
		return s.fail(c, err)
	}

	if humanReadable {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	} else {
		c.Set(fiber.HeaderContentType, "application/x-protobuf")
	}
	return c.Send(body)
}
