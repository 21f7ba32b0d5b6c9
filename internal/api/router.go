package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/northstar/goals-api/internal/api/handler"
	"github.com/northstar/goals-api/internal/api/middleware"
	"github.com/northstar/goals-api/internal/core/ports"
	"github.com/northstar/goals-api/internal/core/service"
	"github.com/northstar/goals-api/internal/infrastructure/config"
	"github.com/northstar/goals-api/internal/infrastructure/db/postgres"
	redisdb "github.com/northstar/goals-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the login throttle is then disabled.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("northstar"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"*"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb)
	}

	tokenService := service.NewTokenService(cfg.SecretKey, cfg.TokenTTL())
	authService := service.NewAuthService(postgres.NewAuthRepository(db), tokenService, throttle, log)
	goalService := service.NewGoalService(postgres.NewGoalRepository(db), log)

	authHandler := handler.NewAuthHandler(authService)
	goalHandler := handler.NewGoalHandler(goalService)
	authRequired := middleware.Auth(tokenService, authService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authRequired)

	// --- Goal routes ---
	goals := e.Group("/goals", authRequired)
	goals.GET("", goalHandler.List)
	goals.POST("", goalHandler.Create)
	goals.PUT("/:id", goalHandler.Update)
	goals.DELETE("/:id", goalHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
