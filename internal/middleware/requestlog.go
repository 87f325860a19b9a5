package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// RequestLogger logs one entry per request. Responses with status >= 400
// are logged at Warn.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		entry := log.WithFields(log.Fields{
			"status":  status,
			"latency": time.Since(start).String(),
			"method":  c.Method(),
			"path":    c.Path(),
			"ip":      c.IP(),
		})
		if status >= fiber.StatusBadRequest {
			entry.Warn("request completed")
		} else {
			entry.Info("request completed")
		}

		return err
	}
}
