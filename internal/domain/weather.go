package domain

import (
	"errors"
	"time"
)

// ErrUpstream marks a weather or geocoding upstream failure. Unlike price
// queries, these are surfaced to the caller as retryable errors instead of
// silently substituting sample data.
var ErrUpstream = errors.New("upstream fetch failed")

// Coordinates is a WGS-84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// WeatherSnapshot is the normalized current-conditions view for one
// location. Fetched fresh per request, never mutated.
type WeatherSnapshot struct {
	Coord        Coordinates `json:"coord"`
	TempC        float64     `json:"temp_c"`
	FeelsLikeC   float64     `json:"feels_like_c"`
	TempMinC     float64     `json:"temp_min_c"`
	TempMaxC     float64     `json:"temp_max_c"`
	HumidityPct  int         `json:"humidity_pct"`
	PressureHPa  int         `json:"pressure_hpa"`
	WindSpeedMS  float64     `json:"wind_speed_ms"`
	WindDeg      int         `json:"wind_deg"`
	VisibilityM  int         `json:"visibility_m"`
	CloudsPct    int         `json:"clouds_pct"`
	Rain1hMM     float64     `json:"rain_1h_mm"`
	Condition    string      `json:"condition"`
	Description  string      `json:"description"`
	Icon         string      `json:"icon"`
	LocationName string      `json:"location_name"`
	Sunrise      time.Time   `json:"sunrise"`
	Sunset       time.Time   `json:"sunset"`
	ObservedAt   time.Time   `json:"observed_at"`
}

// WindKMH converts the source wind speed (m/s) to km/h for display.
func (s WeatherSnapshot) WindKMH() float64 {
	return s.WindSpeedMS * 3.6
}

// RainChance estimates a rain probability percentage from the last hour's
// rainfall. The x20 factor capped at 100 is a simplistic display heuristic
// carried over from the product, not a meteorological model.
func (s WeatherSnapshot) RainChance() float64 {
	chance := s.Rain1hMM * 20
	if chance > 100 {
		return 100
	}
	return chance
}

// ForecastEntry is one three-hour forecast slot.
type ForecastEntry struct {
	Time        time.Time `json:"time"`
	TempMinC    float64   `json:"temp_min_c"`
	TempMaxC    float64   `json:"temp_max_c"`
	HumidityPct int       `json:"humidity_pct"`
	WindSpeedMS float64   `json:"wind_speed_ms"`
	// PrecipProbability is the upstream "pop" field, 0 to 1.
	PrecipProbability float64 `json:"precip_probability"`
	Condition         string  `json:"condition"`
	Icon              string  `json:"icon"`
	Rain3hMM          float64 `json:"rain_3h_mm"`
}

// ForecastSeries is the ordered 5-day / 3-hour forecast window: up to 40
// entries, ascending by time.
type ForecastSeries struct {
	City    string          `json:"city"`
	Country string          `json:"country"`
	Entries []ForecastEntry `json:"entries"`
}

// dailyStride selects one entry per 24-hour period from the 3-hour series:
// every 8th entry approximates the same time each day.
const dailyStride = 8

// maxDailyEntries caps the daily view at the 5-day window.
const maxDailyEntries = 5

// Daily derives the per-day forecast view: every 8th three-hour entry,
// capped at 5 days.
func (f ForecastSeries) Daily() []ForecastEntry {
	out := make([]ForecastEntry, 0, maxDailyEntries)
	for i := 0; i < len(f.Entries) && len(out) < maxDailyEntries; i += dailyStride {
		out = append(out, f.Entries[i])
	}
	return out
}
