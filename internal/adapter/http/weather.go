package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/krishikendra/agri-data-service/internal/domain"
	"github.com/krishikendra/agri-data-service/internal/location"
)

// locationQuery builds a location query from lat/lon or place parameters.
// The boolean is false when the parameters are malformed.
func locationQuery(c *gin.Context) (location.Query, bool) {
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" || lonStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must both be valid numbers"})
			return location.Query{}, false
		}
		return location.Query{Coords: &domain.Coordinates{Lat: lat, Lon: lon}}, true
	}
	return location.Query{Place: c.Query("place")}, true
}

// writeWeatherError maps resolution and upstream failures to status codes.
// Upstream outages are 502 so the caller knows a retry may succeed.
func writeWeatherError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrPlaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
	case errors.Is(err, domain.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather service unavailable, please retry", "retryable": true})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (s *Server) handleCurrentWeather(c *gin.Context) {
	q, ok := locationQuery(c)
	if !ok {
		return
	}
	snap, err := s.weather.Current(c.Request.Context(), q)
	if err != nil {
		writeWeatherError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"current":     snap,
		"wind_kmh":    snap.WindKMH(),
		"rain_chance": snap.RainChance(),
	})
}

func (s *Server) handleForecast(c *gin.Context) {
	q, ok := locationQuery(c)
	if !ok {
		return
	}
	series, err := s.weather.Forecast(c.Request.Context(), q)
	if err != nil {
		writeWeatherError(c, err)
		return
	}
	// The daily view is the default; hourly=true exposes the raw 3-hour series.
	if c.Query("hourly") == "true" {
		c.JSON(http.StatusOK, gin.H{"forecast": series})
		return
	}
	c.JSON(http.StatusOK, gin.H{"city": series.City, "country": series.Country, "daily": series.Daily()})
}

func (s *Server) handleWeatherSummary(c *gin.Context) {
	q, ok := locationQuery(c)
	if !ok {
		return
	}
	summary, err := s.weather.Summary(c.Request.Context(), q)
	if err != nil {
		writeWeatherError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
