// Package nominatim reverse-geocodes coordinates via the OpenStreetMap
// Nominatim API.
package nominatim

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

	"golang.org/x/time/rate"

	"github.com/krishikendra/agri-data-service/internal/domain"
	"github.com/krishikendra/agri-data-service/internal/observability"
)

// unknownLocation is the display name when the address has no settlement.
const unknownLocation = "Unknown Location"

// userAgent identifies the service to Nominatim, which rejects anonymous
// clients.
const userAgent = "agri-data-service/1.0"

// Client implements domain.ReverseGeocoder against Nominatim. The usage
// policy allows at most one request per second, enforced with a limiter
// shared across all callers of this client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Nominatim reverse geocoding client.
func NewClient(timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://nominatim.openstreetmap.org",
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		metrics: metrics,
		logger:  logger,
	}
}

// ReverseGeocode resolves coordinates to the nearest settlement name:
// city, then town, then village, falling back to "Unknown Location".
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (domain.GeocodedPlace, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.GeocodedPlace{}, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{
		"lat":    {strconv.FormatFloat(lat, 'f', 6, 64)},
		"lon":    {strconv.FormatFloat(lon, 'f', 6, 64)},
		"format": {"json"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return domain.GeocodedPlace{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues("nominatim").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues("nominatim", "error").Inc()
		return domain.GeocodedPlace{}, fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.UpstreamRequests.WithLabelValues("nominatim", "error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return domain.GeocodedPlace{}, fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var raw response
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.metrics.UpstreamRequests.WithLabelValues("nominatim", "error").Inc()
		return domain.GeocodedPlace{}, fmt.Errorf("decode response: %w", err)
	}
	c.metrics.UpstreamRequests.WithLabelValues("nominatim", "success").Inc()

	return domain.GeocodedPlace{Lat: lat, Lon: lon, Name: raw.settlement()}, nil
}

type response struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
	} `json:"address"`
}

func (r response) settlement() string {
	switch {
	case r.Address.City != "":
		return r.Address.City
	case r.Address.Town != "":
		return r.Address.Town
	case r.Address.Village != "":
		return r.Address.Village
	default:
		return unknownLocation
	}
}
