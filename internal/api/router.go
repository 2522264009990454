package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/brokerdesk/employee-portal/internal/api/handler"
	"github.com/brokerdesk/employee-portal/internal/api/middleware"
	"github.com/brokerdesk/employee-portal/internal/core/ports"
	"github.com/brokerdesk/employee-portal/internal/infrastructure/config"
	"github.com/brokerdesk/employee-portal/web"
)

// Deps carries everything the router needs wired in.
type Deps struct {
	Config    *config.Config
	Logger    zerolog.Logger
	DB        *gorm.DB
	Redis     *redis.Client // nil when sessions live in memory
	Auth      ports.AuthService
	Customers ports.CustomerService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Config.Session.TTL, d.Config.Session.CookieSecure)
	customerHandler := handler.NewCustomerHandler(d.Customers)
	sessionRequired := middleware.Session(d.Auth)

	// --- Auth routes ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout)

	// --- Customer routes (session gated) ---
	customers := e.Group("/api/customers", sessionRequired)
	customers.GET("", customerHandler.List)
	customers.POST("", customerHandler.Create)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.DB, d.Redis)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Embedded client ---
	e.FileFS("/", "static/index.html", web.Static)
	e.StaticFS("/static", echo.MustSubFS(web.Static, "static"))

	return e
}
