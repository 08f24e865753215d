// Package rayid assigns a unique request ID (RayID) to every request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the header carrying the request ray ID.
const Header = "X-Ray-ID"

// New returns a middleware that ensures every request carries a ray ID.
// An incoming ID is reused so traces can span services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
