package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger emits one structured line per request: method, path,
// status and duration.
func (handler *Handler) RequestLogger(c *fiber.Ctx) error {
	started := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		if fiberError, ok := err.(*fiber.Error); ok {
			status = fiberError.Code
		}
	}

	handler.logger.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", status).
		Dur("duration", time.Since(started)).
		Msg("request")

	return err
}
