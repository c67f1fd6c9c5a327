package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// NewHandler wires the handler with its repositories and services. The
// secret signs session cookies, so an empty one is refused.
func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool, logger zerolog.Logger) (*Handler, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("secret key must not be empty")
	}
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
