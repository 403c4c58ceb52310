package handler

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	monitoringHandler *MonitoringHandler,
	cropHandler *CropHandler,
	supplyHandler *SupplyHandler,
	inquiryHandler *InquiryHandler,
	dashboardHandler *DashboardHandler,
	healthHandler *HealthHandler,
	authMiddleware fiber.Handler,
) {
	// Health checks (public)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	api := app.Group("/api")

	// Public routes
	api.Post("/auth/login", authHandler.Login)
	api.Post("/inquiries", inquiryHandler.Submit)

	// Authenticated routes, scoped to the kabupaten in the token
	api.Get("/auth/me", authMiddleware, authHandler.Me)

	satellite := api.Group("/satellite", authMiddleware)
	satellite.Get("/", monitoringHandler.ListSatellite)
	satellite.Post("/", monitoringHandler.CreateSatellite)

	weather := api.Group("/weather", authMiddleware)
	weather.Get("/", monitoringHandler.ListWeather)
	weather.Post("/", monitoringHandler.CreateWeather)

	crops := api.Group("/crops", authMiddleware)
	crops.Get("/", cropHandler.List)
	crops.Post("/", cropHandler.Create)
	crops.Put("/:id", cropHandler.Update)
	crops.Delete("/:id", cropHandler.Delete)

	supply := api.Group("/supply", authMiddleware)
	supply.Get("/", supplyHandler.List)
	supply.Post("/", supplyHandler.Create)

	api.Get("/partners", authMiddleware, supplyHandler.ListPartners)

	api.Get("/dashboard", authMiddleware, dashboardHandler.Overview)
	api.Get("/reports/monthly", authMiddleware, dashboardHandler.MonthlyReport)

	inquiries := api.Group("/inquiries", authMiddleware)
	inquiries.Get("/", inquiryHandler.List)
	inquiries.Put("/:id", inquiryHandler.UpdateStatus)
}
