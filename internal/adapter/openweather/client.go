// Package openweather fetches current conditions, forecasts, and forward
// geocoding from the OpenWeatherMap API.
package openweather

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

	"github.com/krishikendra/agri-data-service/internal/domain"
	"github.com/krishikendra/agri-data-service/internal/observability"
)

// Client talks to the OpenWeatherMap data API. All requests use metric
// units.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OpenWeather client.
func NewClient(apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://api.openweathermap.org/data/2.5",
		metrics: metrics,
		logger:  logger,
	}
}

// Current fetches current conditions at the given coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64) (domain.WeatherSnapshot, error) {
	params := c.params()
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))

	var raw currentResponse
	if err := c.get(ctx, "/weather", params, &raw); err != nil {
		return domain.WeatherSnapshot{}, err
	}
	return raw.toSnapshot(), nil
}

// Forecast fetches the 5-day / 3-hour forecast at the given coordinates.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (domain.ForecastSeries, error) {
	params := c.params()
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))

	var raw forecastResponse
	if err := c.get(ctx, "/forecast", params, &raw); err != nil {
		return domain.ForecastSeries{}, err
	}
	return raw.toSeries(), nil
}

// Geocode resolves a free-text place name, scoped to India, to coordinates.
// An unknown place returns domain.ErrPlaceNotFound.
func (c *Client) Geocode(ctx context.Context, place string) (domain.GeocodedPlace, error) {
	params := c.params()
	params.Set("q", place+",IN")

	var raw currentResponse
	if err := c.get(ctx, "/weather", params, &raw); err != nil {
		return domain.GeocodedPlace{}, err
	}
	return domain.GeocodedPlace{
		Lat:  raw.Coord.Lat,
		Lon:  raw.Coord.Lon,
		Name: raw.Name,
	}, nil
}

func (c *Client) params() url.Values {
	return url.Values{
		"appid": {c.apiKey},
		"units": {"metric"},
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	start := time.Now()
	err := c.doGet(ctx, path, params, out)
	c.metrics.UpstreamDuration.WithLabelValues("openweather").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues("openweather", "error").Inc()
		return err
	}
	c.metrics.UpstreamRequests.WithLabelValues("openweather", "success").Inc()
	return nil
}

func (c *Client) doGet(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrPlaceNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("openweather API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// OpenWeather API response types.

type weatherDesc struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type currentResponse struct {
	Coord domain.Coordinates `json:"coord"`
	Main  struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Rain struct {
		OneH float64 `json:"1h"`
	} `json:"rain"`
	Weather    []weatherDesc `json:"weather"`
	Visibility int           `json:"visibility"`
	Dt         int64         `json:"dt"`
	Sys        struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Name string `json:"name"`
}

func (r currentResponse) toSnapshot() domain.WeatherSnapshot {
	s := domain.WeatherSnapshot{
		Coord:        r.Coord,
		TempC:        r.Main.Temp,
		FeelsLikeC:   r.Main.FeelsLike,
		TempMinC:     r.Main.TempMin,
		TempMaxC:     r.Main.TempMax,
		HumidityPct:  r.Main.Humidity,
		PressureHPa:  r.Main.Pressure,
		WindSpeedMS:  r.Wind.Speed,
		WindDeg:      r.Wind.Deg,
		VisibilityM:  r.Visibility,
		CloudsPct:    r.Clouds.All,
		Rain1hMM:     r.Rain.OneH,
		LocationName: r.Name,
		Sunrise:      time.Unix(r.Sys.Sunrise, 0).UTC(),
		Sunset:       time.Unix(r.Sys.Sunset, 0).UTC(),
		ObservedAt:   time.Unix(r.Dt, 0).UTC(),
	}
	if len(r.Weather) > 0 {
		s.Condition = r.Weather[0].Main
		s.Description = r.Weather[0].Description
		s.Icon = r.Weather[0].Icon
	}
	return s
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Rain struct {
			ThreeH float64 `json:"3h"`
		} `json:"rain"`
		Pop     float64       `json:"pop"`
		Weather []weatherDesc `json:"weather"`
	} `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

func (r forecastResponse) toSeries() domain.ForecastSeries {
	series := domain.ForecastSeries{
		City:    r.City.Name,
		Country: r.City.Country,
		Entries: make([]domain.ForecastEntry, 0, len(r.List)),
	}
	for _, e := range r.List {
		entry := domain.ForecastEntry{
			Time:              time.Unix(e.Dt, 0).UTC(),
			TempMinC:          e.Main.TempMin,
			TempMaxC:          e.Main.TempMax,
			HumidityPct:       e.Main.Humidity,
			WindSpeedMS:       e.Wind.Speed,
			PrecipProbability: e.Pop,
			Rain3hMM:          e.Rain.ThreeH,
		}
		if len(e.Weather) > 0 {
			entry.Condition = e.Weather[0].Main
			entry.Icon = e.Weather[0].Icon
		}
		series.Entries = append(series.Entries, entry)
	}
	return series
}
