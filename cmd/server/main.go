package main

import (
	"log"
	"net/http"

	_ "skycast/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"skycast/internal/auth"
	"skycast/internal/cache"
	"skycast/internal/config"
	"skycast/internal/db"
	"skycast/internal/handler"
	"skycast/internal/model"
	"skycast/internal/repository"
	"skycast/internal/router"
	"skycast/internal/service"
	"skycast/internal/weather"
)

// @title Weather Service API
// @version 1.0
// @description Authenticated current-weather API with a TTL-based snapshot cache and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.WeatherSnapshot{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	weatherRepo := repository.NewWeatherRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiration)
	hasher := auth.NewBcryptHasher()

	// Initialize provider client
	providerClient := weather.NewOpenWeatherClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.WeatherTimeout)
	if !cfg.WeatherAPIConfigured() {
		log.Println("WEATHER_API_KEY is not configured; provider calls will fail until it is set")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	weatherService := service.NewWeatherService(weatherRepo, providerClient, cacheClient, cfg.CacheTTL)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	weatherHandler := handler.NewWeatherHandler(weatherService)
	healthHandler := handler.NewHealthHandler(cfg)
	userHandler := handler.NewUserHandler(userRepo)
	snapshotHandler := handler.NewSnapshotHandler(weatherRepo)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		weatherHandler,
		healthHandler,
		userHandler,
		snapshotHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
