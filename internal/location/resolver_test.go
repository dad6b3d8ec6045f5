package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishikendra/agri-data-service/internal/domain"
)

type fakeForward struct {
	calls int
	place domain.GeocodedPlace
	err   error
}

func (f *fakeForward) Geocode(ctx context.Context, place string) (domain.GeocodedPlace, error) {
	f.calls++
	return f.place, f.err
}

type fakeReverse struct {
	place domain.GeocodedPlace
	err   error
}

func (f *fakeReverse) ReverseGeocode(ctx context.Context, lat, lon float64) (domain.GeocodedPlace, error) {
	return f.place, f.err
}

type fakeSensor struct {
	reading domain.SensorReading
	err     error
}

func (f *fakeSensor) CurrentPosition(ctx context.Context) (domain.SensorReading, error) {
	return f.reading, f.err
}

func newTestResolver(t *testing.T, forward domain.ForwardGeocoder, reverse domain.ReverseGeocoder, sensor domain.LocationSensor) *Resolver {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newTestStore(t)
	return NewResolver(store, forward, reverse, sensor, 10*time.Second, 5*time.Minute, logger)
}

func TestResolve_Order(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit coordinates win and are named", func(t *testing.T) {
		reverse := &fakeReverse{place: domain.GeocodedPlace{Lat: 30.9, Lon: 75.85, Name: "Ludhiana"}}
		forward := &fakeForward{}
		r := newTestResolver(t, forward, reverse, nil)

		got, err := r.Resolve(ctx, Query{Coords: &domain.Coordinates{Lat: 30.9, Lon: 75.85}})
		require.NoError(t, err)
		assert.Equal(t, "Ludhiana", got.Name)
		assert.Zero(t, forward.calls)
	})

	t.Run("reverse geocode failure keeps the coordinates", func(t *testing.T) {
		reverse := &fakeReverse{err: errors.New("nominatim down")}
		r := newTestResolver(t, &fakeForward{}, reverse, nil)

		got, err := r.Resolve(ctx, Query{Coords: &domain.Coordinates{Lat: 30.9, Lon: 75.85}})
		require.NoError(t, err)
		assert.Equal(t, 30.9, got.Lat)
		assert.Equal(t, "Unknown Location", got.Name)
	})

	t.Run("preset names skip the geocoder", func(t *testing.T) {
		forward := &fakeForward{}
		r := newTestResolver(t, forward, &fakeReverse{}, nil)

		got, err := r.Resolve(ctx, Query{Place: "Punjab"})
		require.NoError(t, err)
		assert.Equal(t, 31.1471, got.Lat)
		assert.Zero(t, forward.calls)

		got, err = r.Resolve(ctx, Query{Place: "  tamil nadu "})
		require.NoError(t, err)
		assert.Equal(t, "Tamil Nadu", got.Name)
		assert.Zero(t, forward.calls)
	})

	t.Run("non-preset names go to the forward geocoder", func(t *testing.T) {
		forward := &fakeForward{place: domain.GeocodedPlace{Lat: 19.99, Lon: 73.78, Name: "Nashik"}}
		r := newTestResolver(t, forward, &fakeReverse{}, nil)

		got, err := r.Resolve(ctx, Query{Place: "Nashik"})
		require.NoError(t, err)
		assert.Equal(t, "Nashik", got.Name)
		assert.Equal(t, 1, forward.calls)
	})

	t.Run("unknown place surfaces ErrPlaceNotFound", func(t *testing.T) {
		forward := &fakeForward{err: domain.ErrPlaceNotFound}
		r := newTestResolver(t, forward, &fakeReverse{}, nil)

		_, err := r.Resolve(ctx, Query{Place: "Atlantis"})
		assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
	})

	t.Run("geocoder outage surfaces ErrUpstream", func(t *testing.T) {
		forward := &fakeForward{err: errors.New("connection refused")}
		r := newTestResolver(t, forward, &fakeReverse{}, nil)

		_, err := r.Resolve(ctx, Query{Place: "Nashik"})
		assert.ErrorIs(t, err, domain.ErrUpstream)
	})

	t.Run("empty query falls back to saved then default", func(t *testing.T) {
		r := newTestResolver(t, &fakeForward{}, &fakeReverse{}, nil)

		got, err := r.Resolve(ctx, Query{})
		require.NoError(t, err)
		assert.Equal(t, DefaultPlace, got)

		token := r.Begin()
		applied, err := r.Apply(token, domain.GeocodedPlace{Lat: 19.99, Lon: 73.78, Name: "Nashik"})
		require.NoError(t, err)
		require.True(t, applied)

		got, err = r.Resolve(ctx, Query{})
		require.NoError(t, err)
		assert.Equal(t, "Nashik", got.Name)
	})
}

func TestApply_StaleTokenRejected(t *testing.T) {
	r := newTestResolver(t, &fakeForward{}, &fakeReverse{}, nil)

	stale := r.Begin()
	latest := r.Begin()

	applied, err := r.Apply(stale, domain.GeocodedPlace{Name: "Old"})
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, DefaultPlace, r.Current())

	applied, err = r.Apply(latest, domain.GeocodedPlace{Lat: 1, Lon: 2, Name: "New"})
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "New", r.Current().Name)
}

func TestApply_StampsCaptureTime(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.UnixMilli(1770800000000))
	SetClock(fake)
	defer SetClock(nil)

	r := newTestResolver(t, &fakeForward{}, &fakeReverse{}, nil)
	_, err := r.Apply(r.Begin(), domain.GeocodedPlace{Name: "Nashik"})
	require.NoError(t, err)

	loc, ok := r.store.Load()
	require.True(t, ok)
	assert.Equal(t, int64(1770800000000), loc.Timestamp)
}

func TestFromSensor(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh fix is named", func(t *testing.T) {
		fake := clockwork.NewFakeClockAt(time.UnixMilli(1770800000000))
		SetClock(fake)
		defer SetClock(nil)

		sensor := &fakeSensor{reading: domain.SensorReading{Lat: 30.9, Lon: 75.85, TakenAt: fake.Now().Add(-time.Minute)}}
		reverse := &fakeReverse{place: domain.GeocodedPlace{Lat: 30.9, Lon: 75.85, Name: "Ludhiana"}}
		r := newTestResolver(t, &fakeForward{}, reverse, sensor)

		got, err := r.FromSensor(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Ludhiana", got.Name)
	})

	t.Run("stale fix counts as unavailable", func(t *testing.T) {
		fake := clockwork.NewFakeClockAt(time.UnixMilli(1770800000000))
		SetClock(fake)
		defer SetClock(nil)

		sensor := &fakeSensor{reading: domain.SensorReading{Lat: 30.9, Lon: 75.85, TakenAt: fake.Now().Add(-10 * time.Minute)}}
		r := newTestResolver(t, &fakeForward{}, &fakeReverse{}, sensor)

		_, err := r.FromSensor(ctx)
		assert.ErrorIs(t, err, domain.ErrSensorUnavailable)
	})

	t.Run("sensor errors pass through", func(t *testing.T) {
		sensor := &fakeSensor{err: domain.ErrSensorDenied}
		r := newTestResolver(t, &fakeForward{}, &fakeReverse{}, sensor)

		_, err := r.FromSensor(ctx)
		assert.ErrorIs(t, err, domain.ErrSensorDenied)
	})

	t.Run("deadline maps to ErrSensorTimeout", func(t *testing.T) {
		sensor := &fakeSensor{err: context.DeadlineExceeded}
		r := newTestResolver(t, &fakeForward{}, &fakeReverse{}, sensor)

		_, err := r.FromSensor(ctx)
		assert.ErrorIs(t, err, domain.ErrSensorTimeout)
	})

	t.Run("nil sensor is unavailable", func(t *testing.T) {
		r := newTestResolver(t, &fakeForward{}, &fakeReverse{}, nil)

		_, err := r.FromSensor(ctx)
		assert.ErrorIs(t, err, domain.ErrSensorUnavailable)
	})
}

func TestClear(t *testing.T) {
	r := newTestResolver(t, &fakeForward{}, &fakeReverse{}, nil)

	_, err := r.Apply(r.Begin(), domain.GeocodedPlace{Name: "Nashik"})
	require.NoError(t, err)
	require.NoError(t, r.Clear())
	assert.Equal(t, DefaultPlace, r.Current())
}
