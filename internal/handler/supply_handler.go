package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Ryzeria/samikna-website-sub001/internal/service"
	"github.com/Ryzeria/samikna-website-sub001/pkg/validator"
)

type SupplyHandler struct {
	supplyService *service.SupplyService
	validator     *validator.Validator
}

func NewSupplyHandler(supplyService *service.SupplyService, validator *validator.Validator) *SupplyHandler {
	return &SupplyHandler{
		supplyService: supplyService,
		validator:     validator,
	}
}

// List returns supply chain records for the caller's kabupaten
// GET /api/supply?commodity=&from=&to=
func (h *SupplyHandler) List(c *fiber.Ctx) error {
	kabupaten, ok := kabupatenFromLocals(c)
	if !ok {
		return missingTenant(c)
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid from date"})
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid to date"})
	}

	records, err := h.supplyService.ListRecords(c.Context(), kabupaten, c.Query("commodity"), from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load supply records"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": records})
}

// Create registers a supply chain record
// POST /api/supply
func (h *SupplyHandler) Create(c *fiber.Ctx) error {
	kabupaten, ok := kabupatenFromLocals(c)
	if !ok {
		return missingTenant(c)
	}

	var in service.SupplyInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec, err := h.supplyService.AddRecord(c.Context(), kabupaten, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store supply record"})
	}

	return c.Status(fiber.StatusCreated).JSON(rec)
}

// ListPartners returns the mitra partner directory
// GET /api/partners?category=
func (h *SupplyHandler) ListPartners(c *fiber.Ctx) error {
	kabupaten, ok := kabupatenFromLocals(c)
	if !ok {
		return missingTenant(c)
	}

	partners, err := h.supplyService.ListPartners(c.Context(), kabupaten, c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load partners"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": partners})
}
