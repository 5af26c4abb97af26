package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID tags every request with an id, reusing the caller's
// X-Request-ID when present.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("requestid", id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}
