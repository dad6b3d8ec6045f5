package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/krishikendra/agri-data-service/internal/adapter/agmarknet"
	"github.com/krishikendra/agri-data-service/internal/adapter/geocode"
	httpadapter "github.com/krishikendra/agri-data-service/internal/adapter/http"
	"github.com/krishikendra/agri-data-service/internal/adapter/nominatim"
	"github.com/krishikendra/agri-data-service/internal/adapter/openweather"
	"github.com/krishikendra/agri-data-service/internal/config"
	"github.com/krishikendra/agri-data-service/internal/location"
	"github.com/krishikendra/agri-data-service/internal/observability"
	"github.com/krishikendra/agri-data-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	prices := agmarknet.NewClient(cfg.AgmarknetAPIKey, cfg.AgmarknetTimeout, cfg.AgmarknetLimit, metrics, logger)
	weather := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherTimeout, metrics, logger)
	reverse := nominatim.NewClient(cfg.NominatimTimeout, metrics, logger)
	forward := geocode.NewCachedForwardGeocoder(weather, cfg.GeocodeCacheSize, metrics)

	store := location.NewStore(cfg.LocationFile, logger)
	resolver := location.NewResolver(store, forward, reverse, nil, cfg.SensorTimeout, cfg.SensorMaxAge, logger)

	srv := httpadapter.NewServer(
		cfg.HTTPAddr,
		service.NewPriceService(prices, metrics, logger),
		service.NewSchemeService(),
		service.NewWeatherService(weather, resolver, logger),
		httpadapter.NewLocationHandler(resolver, logger),
		store,
		cfg.ShutdownTimeout,
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
