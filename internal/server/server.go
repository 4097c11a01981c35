// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the search relay, the blog generation relay, and
// the gap generator over HTTP using echo.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/pdiddy/gapwriter/internal/completion"
	"github.com/pdiddy/gapwriter/internal/metrics"
	"github.com/pdiddy/gapwriter/internal/search"
	"github.com/pdiddy/gapwriter/pkg/types"
)

// Defaults applied by New when the config leaves them zero.
const (
	DefaultAddr            = ":3000"
	DefaultShutdownTimeout = 10 * time.Second
)

// Server routes API requests to the configured backends.
type Server struct {
	cfg        types.ServerConfig
	search     search.Backend
	completion completion.Backend
	echo       *echo.Echo
}

// New builds a Server with all routes and middleware registered.
func New(cfg types.ServerConfig, sb search.Backend, cb completion.Backend) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	s := &Server{cfg: cfg, search: sb, completion: cb}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handleError

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger())
	e.Use(middleware.Recover())

	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	if cfg.RateLimit > 0 {
		api.Use(rateLimiter(cfg.RateLimit, cfg.RateBurst))
	}
	api.GET("/search", s.handleSearch)
	api.POST("/generate-blog", s.handleGenerateBlog)
	api.GET("/gaps", s.handleGaps)

	s.echo = e
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "addr", s.cfg.Addr)
		if err := s.echo.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/healthz"
		},
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		LogRoutePath: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			metrics.ObserveHTTP(v.Method, v.RoutePath, v.Status)

			rctx := c.Request().Context()
			attrs := []any{
				"request_id", v.RequestID,
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
			}
			if v.Error == nil {
				slog.InfoContext(rctx, "request completed", attrs...)
			} else {
				slog.WarnContext(rctx, "request failed", append(attrs, "error", v.Error.Error())...)
			}
			return nil
		},
	})
}

// rateLimiter limits /api requests per client IP.
func rateLimiter(limit float64, burst int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limit),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	retryAfter := strconv.Itoa(max(int(1.0/limit), 1))

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			c.Response().Header().Set("Retry-After", retryAfter)
			return newAPIError(http.StatusTooManyRequests, "Rate limit exceeded", "")
		},
	})
}
