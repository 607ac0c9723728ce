package api

import (
	"time"

	"railstatus-service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestLogger tags each request with an id and logs it once it has been served.
// Health probes are not logged.
func requestLogger(log logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Locals("request_id", id)

		start := time.Now()
		err := c.Next()

		if c.Path() != "/health" {
			log.Info("request", "request_id", id, "method", c.Method(), "path", c.Path(),
				"status", c.Response().StatusCode(), "latency", time.Since(start))
		}
		return err
	}
}
