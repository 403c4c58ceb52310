package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/service"
	"github.com/Ryzeria/samikna-website-sub001/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *validator.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *validator.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	client := service.ClientContext{
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
	}

	result, err := h.authService.Authenticate(c.Context(), req.Username, req.Password, client)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "username and password are required",
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			// One fixed message for every credential rejection.
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid username or password",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "system error, please try again later",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token":         result.Token,
		"user":          result.User,
		"loginTime":     result.IssuedAt,
		"sessionExpiry": result.ExpiresAt,
	})
}

// Me returns the profile of the authenticated user
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*domain.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing session",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":        claims.UserID,
		"username":  claims.Username,
		"kabupaten": claims.Kabupaten,
		"role":      claims.Role,
	})
}
