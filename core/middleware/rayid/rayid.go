package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is echoed on every response.
	HeaderName = "X-Ray-ID"
	// LocalsKey is where the id is stored for logger.WithRayID.
	LocalsKey = "ray_id"
)

// New returns a middleware assigning a ray id to each request.
// An incoming X-Ray-ID header is reused when present.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
