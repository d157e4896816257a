package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frosty-coder/red-society/internal/auth"
	"github.com/frosty-coder/red-society/internal/repository"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

// UsernameKey is the locals key under which the session identity is stored.
const UsernameKey = "username"

// Session authenticates the request from the session cookie. The username
// inside a valid token is re-checked against the live user store, so a
// token issued for a since-removed account is rejected.
func Session(tokens *auth.TokenManager, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
		}
		claims, err := tokens.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
		}
		exists, err := users.Exists(c.Context(), claims.Username)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if !exists {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
		}
		c.Locals(UsernameKey, claims.Username)
		return c.Next()
	}
}

// Username returns the session identity set by Session.
func Username(c *fiber.Ctx) string {
	if v, ok := c.Locals(UsernameKey).(string); ok {
		return v
	}
	return ""
}
