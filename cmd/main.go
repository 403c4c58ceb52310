package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/Ryzeria/samikna-website-sub001/internal/config"
	"github.com/Ryzeria/samikna-website-sub001/internal/handler"
	"github.com/Ryzeria/samikna-website-sub001/internal/handler/middleware"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository/postgres"
	"github.com/Ryzeria/samikna-website-sub001/internal/service"
	"github.com/Ryzeria/samikna-website-sub001/pkg/cache"
	"github.com/Ryzeria/samikna-website-sub001/pkg/jwt"
	"github.com/Ryzeria/samikna-website-sub001/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}()
	log.Println("✓ Database connection established")

	if err := runMigrations(cfg); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("✓ Database migrations applied")

	redisClient, err := initRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}()
	log.Println("✓ Redis connection established")

	validate := validator.NewValidator()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	satelliteRepo := postgres.NewSatelliteRepository(db)
	weatherRepo := postgres.NewWeatherRepository(db)
	cropRepo := postgres.NewCropRepository(db)
	supplyRepo := postgres.NewSupplyRepository(db)
	partnerRepo := postgres.NewPartnerRepository(db)
	inquiryRepo := postgres.NewInquiryRepository(db)

	// Token service
	tokenService, err := jwt.NewTokenService(
		[]byte(cfg.JWT.SecretKey),
		cfg.JWT.SessionExpiry,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
	)
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}

	dashboardCache := cache.New(redisClient, 5*time.Minute)

	// Services
	authService := service.NewAuthService(userRepo, tokenService, service.JitterPolicy{
		Min: cfg.Auth.DelayMin,
		Max: cfg.Auth.DelayMax,
	})
	monitoringService := service.NewMonitoringService(satelliteRepo, weatherRepo)
	cropService := service.NewCropService(cropRepo)
	supplyService := service.NewSupplyService(supplyRepo, partnerRepo)
	inquiryService := service.NewInquiryService(inquiryRepo)
	dashboardService := service.NewDashboardService(satelliteRepo, weatherRepo, cropRepo, supplyRepo, partnerRepo, dashboardCache)
	reportService := service.NewReportService(satelliteRepo, weatherRepo, cropRepo, supplyRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validate)
	monitoringHandler := handler.NewMonitoringHandler(monitoringService, validate)
	cropHandler := handler.NewCropHandler(cropService, validate)
	supplyHandler := handler.NewSupplyHandler(supplyService, validate)
	inquiryHandler := handler.NewInquiryHandler(inquiryService, validate)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, reportService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	app := fiber.New(fiber.Config{
		AppName:      "SAMIKNA Platform API v1.0",
		ErrorHandler: customErrorHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Use(middleware.RecoveryMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CORSMiddleware())

	authMiddleware := middleware.AuthMiddleware(tokenService)

	handler.SetupRoutes(
		app,
		authHandler,
		monitoringHandler,
		cropHandler,
		supplyHandler,
		inquiryHandler,
		dashboardHandler,
		healthHandler,
		authMiddleware,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		log.Printf("🚀 Server starting on http://localhost%s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		if err := app.Listen(addr); err != nil {
			log.Printf("❌ Server failed to start: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("⏳ Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✓ Server stopped")
}

// initDB initializes PostgreSQL database connection with retry logic
func initDB(cfg *config.Config) (*sqlx.DB, error) {
	dsn := cfg.Database.DSN()

	var db *sqlx.DB
	var err error

	maxRetries := 5
	retryInterval := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			break
		}

		log.Printf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Error closing database after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations applies the versioned SQL migrations at boot
func runMigrations(cfg *config.Config) error {
	m, err := migrate.New("file://"+cfg.Database.MigrationsDir, cfg.Database.MigrateURL())
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Printf("Error closing migrator: source=%v db=%v", srcErr, dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// initRedis initializes Redis client and verifies connection
func initRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Error closing Redis after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}

// customErrorHandler handles Fiber errors
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	log.Printf("Error handling request [%s %s]: %v", c.Method(), c.Path(), err)

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
