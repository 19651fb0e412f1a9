package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/vinylshop/record-store/internal/api/handler"
	"github.com/vinylshop/record-store/internal/api/metrics"
	"github.com/vinylshop/record-store/internal/api/middleware"
	"github.com/vinylshop/record-store/internal/core/domain"
	"github.com/vinylshop/record-store/internal/core/ports"
)

// Deps holds everything NewRouter wires into the HTTP layer.
type Deps struct {
	Users       ports.UserService
	Products    ports.ProductService
	Tokens      middleware.TokenVerifier
	Revocations middleware.RevocationChecker
	// Checks are run by the readiness probe, keyed by dependency name.
	Checks   map[string]handler.Checker
	Logger   zerolog.Logger
	Registry *prometheus.Registry
	// Swagger mounts /swagger/* when set.
	Swagger bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if err := metrics.Register(reg); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "recordstore",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Dependencies ---
	guard := middleware.NewGuard(d.Tokens, d.Users, d.Revocations, d.Logger)
	userHandler := handler.NewUserHandler(d.Users, d.Logger)
	productHandler := handler.NewProductHandler(d.Products, d.Logger)
	healthHandler := handler.NewHealthHandler(d.Checks)

	// --- Account routes ---
	e.POST("/signup", userHandler.Signup)
	e.POST("/login", userHandler.Login)
	e.GET("/profile", guard.Protect(userHandler.Profile))
	e.PATCH("/profile/update", guard.Protect(userHandler.UpdateProfile))
	e.DELETE("/delete-account", guard.Protect(userHandler.DeleteAccount))

	// --- Catalog routes ---
	e.POST("/products", guard.Protect(middleware.RequireRole(productHandler.Create, domain.RoleAdmin)))
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)

	// --- Operational routes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	if d.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e, nil
}

// requestLogger feeds echo's access log into zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
