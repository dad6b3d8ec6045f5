// Package http exposes the REST API: price search, scheme lookup, weather,
// and the saved location.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/krishikendra/agri-data-service/internal/service"
)

// ReadinessChecker reports whether the service can serve traffic.
type ReadinessChecker interface {
	CheckReadiness() error
}

// Server bundles the router and its dependencies.
type Server struct {
	addr            string
	engine          *gin.Engine
	prices          *service.PriceService
	schemes         *service.SchemeService
	weather         *service.WeatherService
	locations       *LocationHandler
	ready           ReadinessChecker
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// NewServer constructs the API server with routes and middleware.
func NewServer(addr string, prices *service.PriceService, schemes *service.SchemeService, weather *service.WeatherService, locations *LocationHandler, ready ReadinessChecker, shutdownTimeout time.Duration, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestIDMiddleware())
	engine.Use(loggingMiddleware(logger))
	engine.Use(corsMiddleware())

	s := &Server{
		addr:            addr,
		engine:          engine,
		prices:          prices,
		schemes:         schemes,
		weather:         weather,
		locations:       locations,
		ready:           ready,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
	s.registerRoutes()
	return s
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails. Shutdown drains in-flight requests up to the configured
// timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	s.logger.Info("http server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.handleHealthz)
	s.engine.GET("/readyz", s.handleReadyz)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/prices", s.handleQueryPrices)
		v1.GET("/prices/commodities", s.handleListCommodities)
		v1.GET("/prices/states", s.handleListStates)
		v1.GET("/prices/districts", s.handleListDistricts)

		v1.GET("/schemes", s.handleListSchemes)
		v1.GET("/schemes/states", s.handleSchemeStates)
		v1.GET("/schemes/:id", s.handleGetScheme)

		v1.GET("/weather/current", s.handleCurrentWeather)
		v1.GET("/weather/forecast", s.handleForecast)
		v1.GET("/weather/summary", s.handleWeatherSummary)

		v1.GET("/location", s.locations.handleGet)
		v1.POST("/location", s.locations.handleSet)
		v1.DELETE("/location", s.locations.handleClear)
	}
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleReadyz(c *gin.Context) {
	if err := s.ready.CheckReadiness(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
