// Package rayid assigns a request id to every incoming request.
//
// The id is stored in the "ray_id" local (read by logger.WithRayID) and echoed
// in the X-Ray-ID response header. An incoming X-Ray-ID header is reused.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	HeaderName = "X-Ray-ID"
	LocalKey   = "ray_id"
)

// New creates the ray id middleware.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
