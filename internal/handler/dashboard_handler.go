package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ryzeria/samikna-website-sub001/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	reportService    *service.ReportService
}

func NewDashboardHandler(dashboardService *service.DashboardService, reportService *service.ReportService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		reportService:    reportService,
	}
}

// Overview returns the dashboard snapshot for the caller's kabupaten
// GET /api/dashboard
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	kabupaten, ok := kabupatenFromLocals(c)
	if !ok {
		return missingTenant(c)
	}

	snapshot, err := h.dashboardService.Overview(c.Context(), kabupaten)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to build dashboard"})
	}

	return c.Status(fiber.StatusOK).JSON(snapshot)
}

// MonthlyReport returns the monthly aggregates document
// GET /api/reports/monthly?year=&month=
func (h *DashboardHandler) MonthlyReport(c *fiber.Ctx) error {
	kabupaten, ok := kabupatenFromLocals(c)
	if !ok {
		return missingTenant(c)
	}

	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := time.Month(c.QueryInt("month", int(now.Month())))

	report, err := h.reportService.Monthly(c.Context(), kabupaten, year, month)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to build report"})
	}

	return c.Status(fiber.StatusOK).JSON(report)
}
