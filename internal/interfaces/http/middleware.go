package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	headerRequestID = "X-Request-ID"
	localRequestID  = "request_id"
)

// RequestID propaga el X-Request-ID entrante o genera uno nuevo (UUID v4).
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(localRequestID, id)
		c.Set(headerRequestID, id)
		return c.Next()
	}
}

// GetRequestID devuelve el request id de la petición (vacío si no pasó por RequestID).
func GetRequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(localRequestID).(string); ok {
		return v
	}
	return ""
}

// RequestLogger registra cada petición con zerolog: método, ruta, status, latencia y request id.
// Los 5xx van a nivel error, los 4xx a warn.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", GetRequestID(c)).
			Msg("http")
		return err
	}
}
