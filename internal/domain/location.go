package domain

import (
	"context"
	"errors"
	"time"
)

// ErrPlaceNotFound is returned when the geocoding upstream has no match for
// a place name.
var ErrPlaceNotFound = errors.New("location not found")

// Device location sensor failures. Each maps to a distinct user-facing
// message so the user knows whether to grant permission, retry, or give up.
var (
	ErrSensorDenied      = errors.New("location permission denied")
	ErrSensorUnavailable = errors.New("position unavailable")
	ErrSensorTimeout     = errors.New("location request timed out")
)

// GeocodedPlace is a resolved location: coordinates plus a canonical
// display name.
type GeocodedPlace struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name"`
}

// ForwardGeocoder resolves a free-text place name to its best-match
// coordinates. Implementations return ErrPlaceNotFound when the upstream
// has no match.
type ForwardGeocoder interface {
	Geocode(ctx context.Context, place string) (GeocodedPlace, error)
}

// ReverseGeocoder resolves coordinates to place details.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (GeocodedPlace, error)
}

// SensorReading is one fix from a device location sensor.
type SensorReading struct {
	Lat     float64
	Lon     float64
	TakenAt time.Time
}

// LocationSensor abstracts a device positioning source. Implementations
// return one of the ErrSensor* sentinels on failure.
type LocationSensor interface {
	CurrentPosition(ctx context.Context) (SensorReading, error)
}

// StoredLocation is the single persisted last-known-location record. At most
// one exists per installation; it is overwritten on every successful named
// resolution and cleared explicitly.
type StoredLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	// Timestamp is epoch milliseconds of the capture.
	Timestamp int64 `json:"timestamp"`
}

// Age returns how long ago the location was captured.
func (l StoredLocation) Age(now time.Time) time.Duration {
	return now.Sub(time.UnixMilli(l.Timestamp))
}

// Place converts the stored record to a resolved place.
func (l StoredLocation) Place() GeocodedPlace {
	return GeocodedPlace{Lat: l.Latitude, Lon: l.Longitude, Name: l.City}
}
