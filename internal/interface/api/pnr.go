package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type pnrRenderer func(ctx context.Context, pnr string) (string, error)

// pnrReport adapts a PNR keyed use case to a handler
func (s *APIServer) pnrReport(render pnrRenderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		report, err := render(c.UserContext(), c.Params("pnr"))
		return s.result(c, report, err)
	}
}

// GetArrivalByPNR reports the expected arrival at a station for the train booked on a PNR
func (s *APIServer) GetArrivalByPNR(c *fiber.Ctx) error {
	report, err := s.Journeys.ArrivalByPNR(c.UserContext(), c.Params("pnr"), c.Params("station"))
	return s.result(c, report, err)
}
