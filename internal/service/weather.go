package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/krishikendra/agri-data-service/internal/domain"
	"github.com/krishikendra/agri-data-service/internal/location"
)

// WeatherProvider is the weather upstream: current conditions and the
// 5-day forecast.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (domain.WeatherSnapshot, error)
	Forecast(ctx context.Context, lat, lon float64) (domain.ForecastSeries, error)
}

// WeatherSummary is the combined weather view for one location.
type WeatherSummary struct {
	Location domain.GeocodedPlace   `json:"location"`
	Current  domain.WeatherSnapshot `json:"current"`
	Forecast domain.ForecastSeries  `json:"forecast"`
	Daily    []domain.ForecastEntry `json:"daily"`
}

// WeatherService resolves a location and fetches weather for it. Weather
// failures surface as domain.ErrUpstream; unlike prices there is no sample
// substitute, the caller retries.
type WeatherService struct {
	provider WeatherProvider
	resolver *location.Resolver
	logger   *slog.Logger
}

// NewWeatherService creates a weather query service.
func NewWeatherService(provider WeatherProvider, resolver *location.Resolver, logger *slog.Logger) *WeatherService {
	return &WeatherService{provider: provider, resolver: resolver, logger: logger}
}

// Current resolves the query's location and fetches current conditions.
func (s *WeatherService) Current(ctx context.Context, q location.Query) (domain.WeatherSnapshot, error) {
	place, _, err := s.locate(ctx, q)
	if err != nil {
		return domain.WeatherSnapshot{}, err
	}
	snap, err := s.provider.Current(ctx, place.Lat, place.Lon)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: current conditions: %w", domain.ErrUpstream, err)
	}
	return snap, nil
}

// Forecast resolves the query's location and fetches the forecast series.
func (s *WeatherService) Forecast(ctx context.Context, q location.Query) (domain.ForecastSeries, error) {
	place, _, err := s.locate(ctx, q)
	if err != nil {
		return domain.ForecastSeries{}, err
	}
	series, err := s.provider.Forecast(ctx, place.Lat, place.Lon)
	if err != nil {
		return domain.ForecastSeries{}, fmt.Errorf("%w: forecast: %w", domain.ErrUpstream, err)
	}
	return series, nil
}

// Summary resolves the location once and fetches current conditions and the
// forecast concurrently. On full success the resolved location is persisted
// as the saved location, unless a newer resolution has started meanwhile.
func (s *WeatherService) Summary(ctx context.Context, q location.Query) (WeatherSummary, error) {
	place, token, err := s.locate(ctx, q)
	if err != nil {
		return WeatherSummary{}, err
	}

	var (
		wg          sync.WaitGroup
		snap        domain.WeatherSnapshot
		series      domain.ForecastSeries
		currentErr  error
		forecastErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		snap, currentErr = s.provider.Current(ctx, place.Lat, place.Lon)
	}()
	go func() {
		defer wg.Done()
		series, forecastErr = s.provider.Forecast(ctx, place.Lat, place.Lon)
	}()
	wg.Wait()

	if currentErr != nil {
		return WeatherSummary{}, fmt.Errorf("%w: current conditions: %w", domain.ErrUpstream, currentErr)
	}
	if forecastErr != nil {
		return WeatherSummary{}, fmt.Errorf("%w: forecast: %w", domain.ErrUpstream, forecastErr)
	}

	if q.Coords != nil || q.Place != "" {
		if _, err := s.resolver.Apply(token, place); err != nil {
			s.logger.Warn("failed to save resolved location", "error", err)
		}
	}

	return WeatherSummary{
		Location: place,
		Current:  snap,
		Forecast: series,
		Daily:    series.Daily(),
	}, nil
}

func (s *WeatherService) locate(ctx context.Context, q location.Query) (domain.GeocodedPlace, uint64, error) {
	token := s.resolver.Begin()
	place, err := s.resolver.Resolve(ctx, q)
	if err != nil {
		return domain.GeocodedPlace{}, 0, err
	}
	return place, token, nil
}
