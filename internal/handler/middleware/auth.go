package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Ryzeria/samikna-website-sub001/pkg/jwt"
)

// AuthMiddleware validates bearer session tokens and stores the decoded
// claims for downstream handlers. Validity is established purely by
// signature and expiry; tokens are never looked up server-side.
func AuthMiddleware(tokenService *jwt.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing authorization header",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid authorization header format",
			})
		}

		claims, err := tokenService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("kabupaten", claims.Kabupaten)
		c.Locals("role", claims.Role)
		c.Locals("claims", claims)

		return c.Next()
	}
}
