package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/krishikendra/agri-data-service/internal/domain"
)

// Query is one location resolution request. At most one of Coords and Place
// is set; a zero Query resolves to the saved or default location.
type Query struct {
	// Coords is an explicit coordinate pair, e.g. a device position reported
	// by the caller.
	Coords *domain.Coordinates
	// Place is a free-text place name.
	Place string
}

// Resolver turns a Query into a concrete place. Resolution order: explicit
// coordinates, then the preset table, then the forward geocoder, then the
// saved location, then the default.
type Resolver struct {
	store   *Store
	forward domain.ForwardGeocoder
	reverse domain.ReverseGeocoder
	sensor  domain.LocationSensor

	sensorTimeout time.Duration
	sensorMaxAge  time.Duration
	logger        *slog.Logger

	// seq guards Apply against out-of-order resolutions: only the most
	// recently begun resolution may persist its result.
	seq atomic.Uint64
}

// NewResolver creates a location resolver. The sensor may be nil when no
// device positioning source exists.
func NewResolver(store *Store, forward domain.ForwardGeocoder, reverse domain.ReverseGeocoder, sensor domain.LocationSensor, sensorTimeout, sensorMaxAge time.Duration, logger *slog.Logger) *Resolver {
	return &Resolver{
		store:         store,
		forward:       forward,
		reverse:       reverse,
		sensor:        sensor,
		sensorTimeout: sensorTimeout,
		sensorMaxAge:  sensorMaxAge,
		logger:        logger,
	}
}

// Begin starts a resolution attempt and returns its token. A later Begin
// invalidates all earlier tokens, so a slow lookup that finishes after a
// newer one cannot clobber its result.
func (r *Resolver) Begin() uint64 {
	return r.seq.Add(1)
}

// Resolve turns a query into a place without persisting anything.
// An unknown place name returns domain.ErrPlaceNotFound; other geocoder
// failures are wrapped in domain.ErrUpstream.
func (r *Resolver) Resolve(ctx context.Context, q Query) (domain.GeocodedPlace, error) {
	if q.Coords != nil {
		return r.resolveCoords(ctx, q.Coords.Lat, q.Coords.Lon), nil
	}

	if q.Place != "" {
		if preset, ok := presetPlaces[strings.ToLower(strings.TrimSpace(q.Place))]; ok {
			return preset, nil
		}
		place, err := r.forward.Geocode(ctx, q.Place)
		if err != nil {
			if errors.Is(err, domain.ErrPlaceNotFound) {
				return domain.GeocodedPlace{}, err
			}
			return domain.GeocodedPlace{}, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
		}
		return place, nil
	}

	return r.Current(), nil
}

// resolveCoords names a coordinate pair via reverse geocoding. Naming is
// best effort: on failure the coordinates stand with an unknown name.
func (r *Resolver) resolveCoords(ctx context.Context, lat, lon float64) domain.GeocodedPlace {
	place, err := r.reverse.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		r.logger.Warn("reverse geocode failed", "lat", lat, "lon", lon, "error", err)
		return domain.GeocodedPlace{Lat: lat, Lon: lon, Name: "Unknown Location"}
	}
	return place
}

// FromSensor reads the device position source, names it, and returns the
// place. The read is bounded by the sensor timeout; a fix older than the
// freshness window counts as unavailable.
func (r *Resolver) FromSensor(ctx context.Context) (domain.GeocodedPlace, error) {
	if r.sensor == nil {
		return domain.GeocodedPlace{}, domain.ErrSensorUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, r.sensorTimeout)
	defer cancel()

	reading, err := r.sensor.CurrentPosition(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.GeocodedPlace{}, domain.ErrSensorTimeout
		}
		return domain.GeocodedPlace{}, err
	}
	if reading.TakenAt.Before(clock.Now().Add(-r.sensorMaxAge)) {
		r.logger.Warn("discarding stale sensor fix", "taken_at", reading.TakenAt)
		return domain.GeocodedPlace{}, domain.ErrSensorUnavailable
	}

	return r.resolveCoords(ctx, reading.Lat, reading.Lon), nil
}

// Apply persists a resolved place if token is still the latest resolution.
// It reports whether the result was applied.
func (r *Resolver) Apply(token uint64, place domain.GeocodedPlace) (bool, error) {
	if token != r.seq.Load() {
		r.logger.Debug("dropping stale resolution", "token", token)
		return false, nil
	}
	err := r.store.Save(domain.StoredLocation{
		Latitude:  place.Lat,
		Longitude: place.Lon,
		City:      place.Name,
		Timestamp: clock.Now().UnixMilli(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Current returns the saved location, or the default when none is saved.
// The saved record is trusted as-is: no re-geocoding on startup.
func (r *Resolver) Current() domain.GeocodedPlace {
	if loc, ok := r.store.Load(); ok {
		return loc.Place()
	}
	return DefaultPlace
}

// Clear drops the saved location so the next resolution starts from the
// default.
func (r *Resolver) Clear() error {
	return r.store.Clear()
}
