package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"signup-service/app/port"
	"signup-service/app/rest/handlers"
	custommw "signup-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger           *slog.Logger
	SignupUsecase    port.SignupUsecase
	HealthCheckers   map[string]handlers.DependencyChecker
	CORSAllowOrigins []string
	EnableDebug      bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	signupHandler := handlers.NewSignupHandler(config.SignupUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger, config.HealthCheckers)

	// Process-level throttle; the durable signup quota is enforced deeper in.
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.CORSWithOrigins(config.CORSAllowOrigins))
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Signup endpoint. Session-guarded endpoints live in the neighbouring
	// auth service; this service only owns registration.
	auth := v1.Group("/auth")
	auth.POST("/registro", signupHandler.Register)

	return e
}
