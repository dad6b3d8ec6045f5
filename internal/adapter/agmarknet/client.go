// Package agmarknet fetches daily mandi prices from the data.gov.in
// Agmarknet resource.
package agmarknet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/krishikendra/agri-data-service/internal/domain"
	"github.com/krishikendra/agri-data-service/internal/observability"
)

// resourceID is the Agmarknet daily price resource on data.gov.in.
const resourceID = "9ef84268-d588-465a-a308-a864a43d0070"

// Client fetches mandi price records over the data.gov.in API. A circuit
// breaker wraps every call so a flapping upstream trips to the sample set
// quickly instead of burning the request timeout on each query.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	limit      int
	breaker    *gobreaker.CircuitBreaker
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an Agmarknet price client.
func NewClient(apiKey string, timeout time.Duration, limit int, metrics *observability.Metrics, logger *slog.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "agmarknet",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://api.data.gov.in/resource/" + resourceID,
		limit:   limit,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

// FetchPrices queries the upstream with the filter pushed down as API
// filter parameters and returns normalized records. An open breaker or any
// transport, status, or decode failure surfaces as an error; the caller
// decides whether to substitute sample data.
func (c *Client) FetchPrices(ctx context.Context, filter domain.PriceFilter) ([]domain.PriceRecord, error) {
	start := time.Now()
	result, err := c.breaker.Execute(func() (any, error) {
		return c.fetch(ctx, filter)
	})
	c.metrics.UpstreamDuration.WithLabelValues("agmarknet").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues("agmarknet", "error").Inc()
		return nil, fmt.Errorf("fetch prices: %w", err)
	}

	records := result.([]domain.PriceRecord)
	if len(records) == 0 {
		c.metrics.UpstreamRequests.WithLabelValues("agmarknet", "empty").Inc()
	} else {
		c.metrics.UpstreamRequests.WithLabelValues("agmarknet", "success").Inc()
	}
	return records, nil
}

func (c *Client) fetch(ctx context.Context, filter domain.PriceFilter) ([]domain.PriceRecord, error) {
	params := url.Values{
		"api-key": {c.apiKey},
		"format":  {"json"},
		"limit":   {strconv.Itoa(c.limit)},
		"offset":  {"0"},
	}
	if filter.Commodity != "" && filter.Commodity != domain.FilterAll {
		params.Set("filters[commodity]", filter.Commodity)
	}
	if filter.State != "" && filter.State != domain.FilterAll {
		params.Set("filters[state]", filter.State)
	}
	if filter.District != "" && filter.District != domain.FilterAll {
		params.Set("filters[district]", filter.District)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("price request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("agmarknet API error: status %d: %s", resp.StatusCode, body)
	}

	var apiResp response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	records := make([]domain.PriceRecord, 0, len(apiResp.Records))
	for _, raw := range apiResp.Records {
		records = append(records, domain.NormalizePrice(raw))
	}
	return records, nil
}

// data.gov.in response envelope. Only the records array matters; the
// envelope's own count fields are unreliable and ignored.
type response struct {
	Records []domain.RawPriceRecord `json:"records"`
}
