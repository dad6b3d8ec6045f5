package geocode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishikendra/agri-data-service/internal/domain"
	"github.com/krishikendra/agri-data-service/internal/observability"
)

// stubGeocoder counts calls and returns a preset result.
type stubGeocoder struct {
	calls  int
	result domain.GeocodedPlace
	err    error
}

func (s *stubGeocoder) Geocode(ctx context.Context, place string) (domain.GeocodedPlace, error) {
	s.calls++
	return s.result, s.err
}

func TestCachedForwardGeocoder(t *testing.T) {
	t.Run("repeated lookups hit the cache", func(t *testing.T) {
		stub := &stubGeocoder{result: domain.GeocodedPlace{Lat: 30.9, Lon: 75.85, Name: "Ludhiana"}}
		cached := NewCachedForwardGeocoder(stub, 10, observability.NewMetricsForTesting())

		for i := 0; i < 3; i++ {
			place, err := cached.Geocode(context.Background(), "Ludhiana")
			require.NoError(t, err)
			assert.Equal(t, "Ludhiana", place.Name)
		}
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("keys are case and whitespace insensitive", func(t *testing.T) {
		stub := &stubGeocoder{result: domain.GeocodedPlace{Name: "Ludhiana"}}
		cached := NewCachedForwardGeocoder(stub, 10, observability.NewMetricsForTesting())

		_, err := cached.Geocode(context.Background(), "Ludhiana")
		require.NoError(t, err)
		_, err = cached.Geocode(context.Background(), "  ludhiana ")
		require.NoError(t, err)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("errors are never cached", func(t *testing.T) {
		stub := &stubGeocoder{err: domain.ErrPlaceNotFound}
		cached := NewCachedForwardGeocoder(stub, 10, observability.NewMetricsForTesting())

		for i := 0; i < 2; i++ {
			_, err := cached.Geocode(context.Background(), "Atlantis")
			assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
		}
		assert.Equal(t, 2, stub.calls)
	})

	t.Run("empty names are never cached", func(t *testing.T) {
		stub := &stubGeocoder{result: domain.GeocodedPlace{Lat: 1, Lon: 1}}
		cached := NewCachedForwardGeocoder(stub, 10, observability.NewMetricsForTesting())

		for i := 0; i < 2; i++ {
			_, err := cached.Geocode(context.Background(), "somewhere")
			require.NoError(t, err)
		}
		assert.Equal(t, 2, stub.calls)
	})

	t.Run("oldest entry is evicted at capacity", func(t *testing.T) {
		stub := &stubGeocoder{result: domain.GeocodedPlace{Name: "x"}}
		cached := NewCachedForwardGeocoder(stub, 2, observability.NewMetricsForTesting())

		ctx := context.Background()
		_, _ = cached.Geocode(ctx, "a")
		_, _ = cached.Geocode(ctx, "b")
		_, _ = cached.Geocode(ctx, "c") // evicts "a"
		require.Equal(t, 3, stub.calls)

		_, _ = cached.Geocode(ctx, "b") // still cached
		assert.Equal(t, 3, stub.calls)
		_, _ = cached.Geocode(ctx, "a") // refetched
		assert.Equal(t, 4, stub.calls)
	})
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	c := newLRUCache(2)
	c.put("k", domain.GeocodedPlace{Name: "old"})
	c.put("k", domain.GeocodedPlace{Name: "new"})

	got, ok := c.get("k")
	require.True(t, ok)
	assert.Equal(t, "new", got.Name)

	_, ok = c.get("missing")
	assert.False(t, ok)
}
