package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"signup-service/app/config"
	"signup-service/app/driver/kratos"
	"signup-service/app/driver/postgres"
	redisdriver "signup-service/app/driver/redis"
	"signup-service/app/gateway"
	"signup-service/app/port"
	"signup-service/app/rest"
	"signup-service/app/rest/handlers"
	"signup-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	IdentityGateway port.IdentityGateway

	// Usecases
	SignupUsecase port.SignupUsecase

	// Kept for readiness checks when the redis backend is active.
	attemptCounterCheck handlers.DependencyChecker
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	// Initialize database connection
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Kratos client
	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Initialize repositories
	provisionRepository := postgres.NewProvisionRepository(container.DB.Pool(), logger)

	counter, err := container.buildAttemptCounter(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Initialize gateways
	kratosAdapter := kratos.NewClientAdapter(container.KratosClient, logger)
	container.IdentityGateway = gateway.NewIdentityGateway(kratosAdapter, logger)

	// Initialize usecases
	rateLimiter := usecase.NewRateLimiter(counter,
		cfg.RateLimitWindowSeconds,
		cfg.RateLimitMaxAttempts,
		cfg.RateLimitSalt,
		logger)
	container.SignupUsecase = usecase.NewSignupUsecase(
		container.IdentityGateway,
		provisionRepository,
		rateLimiter,
		cfg.SignupDisabled,
		logger)

	logger.Info("container initialized",
		slog.String("rate_limit_backend", cfg.RateLimitBackend),
		slog.Bool("signup_disabled", cfg.SignupDisabled))

	return container, nil
}

// buildAttemptCounter selects the durable counter backend. Postgres shares
// the provisioning pool; redis gets its own client and a readiness check.
func (c *Container) buildAttemptCounter(cfg *config.Config, logger *slog.Logger) (port.AttemptCounter, error) {
	switch cfg.RateLimitBackend {
	case config.RateLimitBackendPostgres:
		return postgres.NewAttemptRepository(c.DB.Pool(), logger), nil
	case config.RateLimitBackendRedis:
		client := redisdriver.NewClient(cfg)
		counter := redisdriver.NewAttemptCounter(client, cfg.RateLimitWindowSeconds, logger)
		if checker, ok := counter.(handlers.DependencyChecker); ok {
			c.attemptCounterCheck = checker
		}
		return counter, nil
	default:
		return nil, fmt.Errorf("unknown rate limit backend: %s", cfg.RateLimitBackend)
	}
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	checkers := map[string]handlers.DependencyChecker{
		"database": c.DB,
		"kratos":   c.KratosClient,
	}
	if c.attemptCounterCheck != nil {
		checkers["redis"] = c.attemptCounterCheck
	}

	routerConfig := rest.RouterConfig{
		Logger:           c.Logger,
		SignupUsecase:    c.SignupUsecase,
		HealthCheckers:   checkers,
		CORSAllowOrigins: c.Config.AllowedOrigins,
		EnableDebug:      c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
