package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishikendra/agri-data-service/internal/domain"
	"github.com/krishikendra/agri-data-service/internal/location"
)

// LocationHandler serves the saved-location endpoints.
type LocationHandler struct {
	resolver *location.Resolver
	logger   *slog.Logger
}

// NewLocationHandler creates the location endpoint handler.
func NewLocationHandler(resolver *location.Resolver, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{resolver: resolver, logger: logger}
}

// setLocationRequest is the POST body. Exactly one way of locating is used:
// coordinates, a place name, or a sensor error report from a client whose
// own positioning attempt failed.
type setLocationRequest struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Place       string   `json:"place"`
	SensorError string   `json:"sensor_error"`
}

// Sensor error codes reported by clients.
const (
	sensorErrDenied      = "denied"
	sensorErrUnavailable = "unavailable"
	sensorErrTimeout     = "timeout"
)

func (h *LocationHandler) handleGet(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"location": h.resolver.Current()})
}

func (h *LocationHandler) handleSet(c *gin.Context) {
	var req setLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.SensorError != "" {
		h.handleSensorError(c, req.SensorError)
		return
	}

	var q location.Query
	switch {
	case req.Latitude != nil && req.Longitude != nil:
		q.Coords = &domain.Coordinates{Lat: *req.Latitude, Lon: *req.Longitude}
	case req.Place != "":
		q.Place = req.Place
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide latitude and longitude, or a place name"})
		return
	}

	token := h.resolver.Begin()
	place, err := h.resolver.Resolve(c.Request.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPlaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		case errors.Is(err, domain.ErrUpstream):
			c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding service unavailable, please retry", "retryable": true})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	applied, err := h.resolver.Apply(token, place)
	if err != nil {
		h.logger.Error("failed to persist location", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": place, "saved": applied})
}

// handleSensorError answers a client-side positioning failure with the
// matching guidance message and the default/saved location to use instead.
func (h *LocationHandler) handleSensorError(c *gin.Context, code string) {
	var msg string
	switch code {
	case sensorErrDenied:
		msg = domain.ErrSensorDenied.Error()
	case sensorErrUnavailable:
		msg = domain.ErrSensorUnavailable.Error()
	case sensorErrTimeout:
		msg = domain.ErrSensorTimeout.Error()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sensor_error code"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  msg,
		"location": h.resolver.Current(),
	})
}

func (h *LocationHandler) handleClear(c *gin.Context) {
	if err := h.resolver.Clear(); err != nil {
		h.logger.Error("failed to clear location", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear location"})
		return
	}
	c.Status(http.StatusNoContent)
}
