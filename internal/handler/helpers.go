package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
)

// kabupatenFromLocals reads the tenancy tag the auth middleware stored
// for this request. All data access is scoped to it.
func kabupatenFromLocals(c *fiber.Ctx) (string, bool) {
	claims, ok := c.Locals("claims").(*domain.Claims)
	if !ok || claims.Kabupaten == "" {
		return "", false
	}
	return claims.Kabupaten, true
}

// parseDateQuery reads an optional RFC 3339 or YYYY-MM-DD query value.
func parseDateQuery(c *fiber.Ctx, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func missingTenant(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "missing session",
	})
}
