package api

import (
	"errors"
	"net/http"
	"strconv"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func (s *APIServer) result(c *fiber.Ctx, report string, err error) error {
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(ResultResponse{Result: report})
}

// fail maps a use case error onto a status code and the passenger-facing message.
func (s *APIServer) fail(c *fiber.Ctx, err error) error {
	status, title := http.StatusInternalServerError, "Internal Server Error"
	switch {
	case usecase.IsInvalidInput(err):
		status, title = http.StatusBadRequest, "Bad Request"
	case errors.Is(err, entity.ErrUnavailable):
		status, title = http.StatusBadGateway, "Upstream unavailable"
	}

	if status != http.StatusBadRequest {
		s.Logger.Warn("Query failed", "request_id", c.Locals("request_id"), "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(ErrorResponse{
		Error:   title,
		Message: usecase.UserMessage(err),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "Bad Request",
		Message: message,
	})
}

// queryInt reads an optional integer query parameter. A present but malformed
// value is reported rather than replaced by the default.
func queryInt(c *fiber.Ctx, key string, defaultValue int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
