package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"nurastays_backend/pkg/utils/jwt"
)

// AuthRequired guards admin routes. It validates the Bearer access token and
// requires a staff identity; every failure mode gets the same 401 so callers
// cannot probe which check tripped. The verified claims are stored in the
// request locals under "user".
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c)
		}

		claims, err := jwt.ValidateAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil || !claims.IsStaff {
			return unauthorized(c)
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Authentication credentials were not provided or are invalid",
	})
}
