// Package service implements the query operations behind the HTTP API:
// price search with sample fallback, scheme lookup, and weather summaries.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sony/gobreaker"

	"github.com/krishikendra/agri-data-service/internal/domain"
	"github.com/krishikendra/agri-data-service/internal/fallback"
	"github.com/krishikendra/agri-data-service/internal/observability"
)

// Price response sources.
const (
	SourceLive   = "live"
	SourceSample = "sample"
)

// PriceFetcher is the live mandi price upstream.
type PriceFetcher interface {
	FetchPrices(ctx context.Context, filter domain.PriceFilter) ([]domain.PriceRecord, error)
}

// PriceQuery is one price search request.
type PriceQuery struct {
	Filter domain.PriceFilter
	SortBy domain.PriceSortField
	Order  domain.SortOrder
}

// PriceResult is a price search response: the records plus which source
// produced them.
type PriceResult struct {
	Records []domain.PriceRecord `json:"records"`
	Source  string               `json:"source"`
}

// PriceService serves price queries from the live upstream, substituting
// the sample set whenever live data cannot be had.
type PriceService struct {
	live    PriceFetcher
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewPriceService creates a price query service.
func NewPriceService(live PriceFetcher, metrics *observability.Metrics, logger *slog.Logger) *PriceService {
	return &PriceService{live: live, metrics: metrics, logger: logger}
}

// Query runs a price search. It never fails: a live fetch error, an open
// circuit breaker, or an empty live result all substitute the filtered
// sample set, tagged so the caller can label the data.
func (s *PriceService) Query(ctx context.Context, q PriceQuery) PriceResult {
	records, err := s.live.FetchPrices(ctx, q.Filter)
	source := SourceLive

	switch {
	case err != nil:
		reason := "error"
		if errors.Is(err, gobreaker.ErrOpenState) {
			reason = "breaker_open"
		}
		s.logger.Warn("live price fetch failed, serving sample data", "reason", reason, "error", err)
		s.metrics.FallbackServed.WithLabelValues(reason).Inc()
		records = fallback.QueryPrices(q.Filter)
		source = SourceSample
	case len(records) == 0:
		s.logger.Info("live price fetch returned no records, serving sample data")
		s.metrics.FallbackServed.WithLabelValues("empty").Inc()
		records = fallback.QueryPrices(q.Filter)
		source = SourceSample
	}

	domain.SortPrices(records, q.SortBy, q.Order)
	return PriceResult{Records: records, Source: source}
}

// Commodities returns the commodity catalog for filter dropdowns.
func (s *PriceService) Commodities() []string {
	return fallback.Commodities()
}

// States returns the state catalog for filter dropdowns.
func (s *PriceService) States() []string {
	return fallback.States()
}

// Districts returns the known districts of a state, possibly empty.
func (s *PriceService) Districts(state string) []string {
	return fallback.Districts(state)
}
