package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Ryzeria/samikna-website-sub001/internal/service"
	"github.com/Ryzeria/samikna-website-sub001/pkg/validator"
)

type MonitoringHandler struct {
	monitoringService *service.MonitoringService
	validator         *validator.Validator
}

func NewMonitoringHandler(monitoringService *service.MonitoringService, validator *validator.Validator) *MonitoringHandler {
	return &MonitoringHandler{
		monitoringService: monitoringService,
		validator:         validator,
	}
}

// ListSatellite returns satellite records for the caller's kabupaten
// GET /api/satellite?from=&to=
func (h *MonitoringHandler) ListSatellite(c *fiber.Ctx) error {
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

	records, err := h.monitoringService.SatelliteRange(c.Context(), kabupaten, from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load satellite data"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": records})
}

// CreateSatellite records a satellite summary
// POST /api/satellite
func (h *MonitoringHandler) CreateSatellite(c *fiber.Ctx) error {
	kabupaten, ok := kabupatenFromLocals(c)
	if !ok {
		return missingTenant(c)
	}

	var in service.SatelliteInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec, err := h.monitoringService.AddSatelliteRecord(c.Context(), kabupaten, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store satellite data"})
	}

	return c.Status(fiber.StatusCreated).JSON(rec)
}

// ListWeather returns weather records for the caller's kabupaten
// GET /api/weather?from=&to=
func (h *MonitoringHandler) ListWeather(c *fiber.Ctx) error {
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

	records, err := h.monitoringService.WeatherRange(c.Context(), kabupaten, from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load weather data"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": records})
}

// CreateWeather records a weather observation
// POST /api/weather
func (h *MonitoringHandler) CreateWeather(c *fiber.Ctx) error {
	kabupaten, ok := kabupatenFromLocals(c)
	if !ok {
		return missingTenant(c)
	}

	var in service.WeatherInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec, err := h.monitoringService.AddWeatherRecord(c.Context(), kabupaten, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store weather data"})
	}

	return c.Status(fiber.StatusCreated).JSON(rec)
}
