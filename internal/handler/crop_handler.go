package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository"
	"github.com/Ryzeria/samikna-website-sub001/internal/service"
	"github.com/Ryzeria/samikna-website-sub001/pkg/validator"
)

type CropHandler struct {
	cropService *service.CropService
	validator   *validator.Validator
}

func NewCropHandler(cropService *service.CropService, validator *validator.Validator) *CropHandler {
	return &CropHandler{
		cropService: cropService,
		validator:   validator,
	}
}

// List returns crop activities for the caller's kabupaten
// GET /api/crops?status=&type=&limit=&offset=
func (h *CropHandler) List(c *fiber.Ctx) error {
	kabupaten, ok := kabupatenFromLocals(c)
	if !ok {
		return missingTenant(c)
	}

	filter := repository.CropFilter{
		Status:       domain.ActivityStatus(c.Query("status")),
		ActivityType: domain.ActivityType(c.Query("type")),
		Limit:        c.QueryInt("limit", 50),
		Offset:       c.QueryInt("offset", 0),
	}

	activities, err := h.cropService.List(c.Context(), kabupaten, filter)
	if err != nil {
		if errors.Is(err, service.ErrUnknownStatus) || errors.Is(err, service.ErrUnknownActivityType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load crop activities"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": activities})
}

// Create registers a crop activity
// POST /api/crops
func (h *CropHandler) Create(c *fiber.Ctx) error {
	kabupaten, ok := kabupatenFromLocals(c)
	if !ok {
		return missingTenant(c)
	}

	var in service.CropActivityInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	act, err := h.cropService.Create(c.Context(), kabupaten, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create crop activity"})
	}

	return c.Status(fiber.StatusCreated).JSON(act)
}

// Update rewrites a crop activity
// PUT /api/crops/:id
func (h *CropHandler) Update(c *fiber.Ctx) error {
	kabupaten, ok := kabupatenFromLocals(c)
	if !ok {
		return missingTenant(c)
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid activity id"})
	}

	var in service.CropActivityInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	act, err := h.cropService.Update(c.Context(), kabupaten, id, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "crop activity not found"})
		case errors.Is(err, service.ErrUnknownStatus), errors.Is(err, service.ErrUnknownActivityType):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update crop activity"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(act)
}

// Delete removes a crop activity
// DELETE /api/crops/:id
func (h *CropHandler) Delete(c *fiber.Ctx) error {
	kabupaten, ok := kabupatenFromLocals(c)
	if !ok {
		return missingTenant(c)
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid activity id"})
	}

	if err := h.cropService.Delete(c.Context(), kabupaten, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "crop activity not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete crop activity"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "crop activity deleted"})
}
