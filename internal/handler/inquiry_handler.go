package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Ryzeria/samikna-website-sub001/internal/service"
	"github.com/Ryzeria/samikna-website-sub001/pkg/validator"
)

type InquiryHandler struct {
	inquiryService *service.InquiryService
	validator      *validator.Validator
}

func NewInquiryHandler(inquiryService *service.InquiryService, validator *validator.Validator) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
		validator:      validator,
	}
}

// Submit accepts a public contact-form inquiry
// POST /api/inquiries
func (h *InquiryHandler) Submit(c *fiber.Ctx) error {
	var in service.InquiryInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	inq, err := h.inquiryService.Submit(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to submit inquiry"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      inq.ID,
		"message": "inquiry received",
	})
}

// List returns inquiries for triage
// GET /api/inquiries?status=&limit=&offset=
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	inquiries, err := h.inquiryService.List(c.Context(), c.Query("status"), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		if errors.Is(err, service.ErrUnknownStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load inquiries"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": inquiries})
}

// UpdateStatus moves an inquiry through triage
// PUT /api/inquiries/:id
func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid inquiry id"})
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=new in_progress resolved"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.inquiryService.UpdateStatus(c.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "inquiry not found"})
		case errors.Is(err, service.ErrUnknownStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update inquiry"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "inquiry updated"})
}
