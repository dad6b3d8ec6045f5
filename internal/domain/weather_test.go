package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeatherSnapshot_WindKMH(t *testing.T) {
	s := WeatherSnapshot{WindSpeedMS: 5}
	assert.InDelta(t, 18.0, s.WindKMH(), 1e-9)
}

func TestWeatherSnapshot_RainChance(t *testing.T) {
	tests := []struct {
		name     string
		rain1h   float64
		expected float64
	}{
		{"no rain", 0, 0},
		{"light rain", 1.5, 30},
		{"moderate rain", 4, 80},
		{"capped at 100", 12, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := WeatherSnapshot{Rain1hMM: tt.rain1h}
			assert.Equal(t, tt.expected, s.RainChance())
		})
	}
}

func TestForecastSeries_Daily(t *testing.T) {
	base := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)

	series := func(n int) ForecastSeries {
		entries := make([]ForecastEntry, n)
		for i := range entries {
			entries[i] = ForecastEntry{Time: base.Add(time.Duration(i) * 3 * time.Hour), TempMaxC: float64(i)}
		}
		return ForecastSeries{Entries: entries}
	}

	t.Run("full 40-entry window yields 5 days", func(t *testing.T) {
		daily := series(40).Daily()

		assert.Len(t, daily, 5)
		// Every 8th three-hour slot, i.e. 24 hours apart.
		for i := 1; i < len(daily); i++ {
			assert.Equal(t, 24*time.Hour, daily[i].Time.Sub(daily[i-1].Time))
		}
		assert.Equal(t, 0.0, daily[0].TempMaxC)
		assert.Equal(t, 8.0, daily[1].TempMaxC)
	})

	t.Run("short series", func(t *testing.T) {
		assert.Len(t, series(17).Daily(), 3) // indices 0, 8, 16
	})

	t.Run("empty series", func(t *testing.T) {
		assert.Empty(t, series(0).Daily())
	})

	t.Run("never exceeds five days", func(t *testing.T) {
		assert.Len(t, series(80).Daily(), 5)
	})
}

func TestStoredLocation(t *testing.T) {
	captured := time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)
	loc := StoredLocation{Latitude: 28.7041, Longitude: 77.1025, City: "New Delhi", Timestamp: captured.UnixMilli()}

	assert.Equal(t, 30*time.Minute, loc.Age(captured.Add(30*time.Minute)))

	place := loc.Place()
	assert.Equal(t, 28.7041, place.Lat)
	assert.Equal(t, 77.1025, place.Lon)
	assert.Equal(t, "New Delhi", place.Name)
}
