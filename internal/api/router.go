package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pizzanow/ordering-system/internal/api/handler"
	"github.com/pizzanow/ordering-system/internal/api/middleware"
	"github.com/pizzanow/ordering-system/internal/core/ports"
)

// Dependencies carries everything the router needs to wire the handlers.
type Dependencies struct {
	AuthService  ports.AuthService
	OrderService ports.OrderService
	Tokens       ports.TokenIssuer
	Pool         *pgxpool.Pool
	Redis        *redis.Client
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("ordering"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	orderHandler := handler.NewOrderHandler(deps.OrderService, deps.AuthService)
	auth := middleware.Auth(deps.Tokens)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Order routes ---
	// Creation is unauthenticated and trusts the user_id in the body; only
	// the listing of one's own orders requires a bearer token.
	e.POST("/orders", orderHandler.Create)
	e.GET("/orders", orderHandler.List, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Pool, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
