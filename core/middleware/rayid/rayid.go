package rayid

import (
	"stock-counter/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// HeaderName carries the request id on requests and responses.
const HeaderName = "X-Ray-ID"

// New returns a middleware that tags every request with a ray id. An id sent
// by the client is kept; otherwise a UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := utils.CopyString(c.Get(HeaderName))
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
