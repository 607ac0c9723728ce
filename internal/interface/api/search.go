package api

import (
	"github.com/gofiber/fiber/v2"
)

// GetStations searches stations by name or code
func (s *APIServer) GetStations(c *fiber.Ctx) error {
	report, err := s.Search.Stations(c.UserContext(), c.Query("q"))
	return s.result(c, report, err)
}

// GetTrains searches trains by name or number
func (s *APIServer) GetTrains(c *fiber.Ctx) error {
	report, err := s.Search.Trains(c.UserContext(), c.Query("q"))
	return s.result(c, report, err)
}
