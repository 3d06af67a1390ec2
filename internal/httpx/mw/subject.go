package mw

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserID extracts the authenticated user id from the auth context.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	ac, _ := c.Locals("auth").(*AuthContext)
	if ac == nil || !strings.HasPrefix(ac.Subject, "user:") {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(strings.TrimPrefix(ac.Subject, "user:"))
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}
