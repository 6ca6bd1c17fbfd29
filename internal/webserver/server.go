package webserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// Server owns the echo instance and the underlying http.Server lifecycle.
type Server struct {
	echo       *echo.Echo
	api        *echo.Group
	httpServer *http.Server
	logger     *zap.Logger
}

// New builds the echo stack: request id, recovery, request logging, CORS,
// the health check and an /api group guarded by identity.
func New(logger *zap.Logger, cfg config.HTTPConfig, identity echo.MiddlewareFunc, health port.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = newJSONSerializer()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.Error(err),
				zap.String("requestID", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.ByteString("stack", stack))
			return err
		},
	}))
	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		}))
	}

	e.GET("/healthz", healthHandler(logger, health))

	s := &Server{
		echo:   e,
		api:    e.Group("/api", identity),
		logger: logger,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Address(),
		Handler:           e,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// API is the route group every storefront endpoint registers on.
func (s *Server) API() *echo.Group {
	return s.api
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins listening for HTTP traffic.
func (s *Server) Start() error {
	s.logger.Info("starting http server", zap.String("addr", s.httpServer.Addr))

	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully terminates all active connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.httpServer.Shutdown(ctx)
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("requestID", v.RequestID),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}

			if v.Status >= http.StatusInternalServerError {
				logger.Error("request failed", fields...)
			} else {
				logger.Info("request completed", fields...)
			}
			return nil
		},
	})
}

func healthHandler(logger *zap.Logger, health port.HealthChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if health != nil {
			if err := health.Ping(ctx); err != nil {
				logger.Error("health check failed", zap.Error(err))
				return c.JSON(http.StatusServiceUnavailable, map[string]string{
					"status": "degraded",
					"error":  err.Error(),
				})
			}
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
