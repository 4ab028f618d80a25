package middleware

import (
	"devconnect/internal/models"
	"devconnect/internal/token"

	"github.com/gofiber/fiber/v2"
)

// TokenHeader is the request header carrying the bearer token. The API keeps
// the original client contract of a dedicated header rather than the
// standard Authorization scheme.
const TokenHeader = "x-auth-token"

// AuthRequired enforces authentication for protected routes. On success the
// authenticated user ID is stored in c.Locals("userID").
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(TokenHeader)
		if raw == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Access denied, You must be authorized first."))
		}

		userID, err := token.Verify(raw, secret)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Token is not valid."))
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}
