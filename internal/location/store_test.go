package location

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishikendra/agri-data-service/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "location.json")
	return NewStore(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Load()
	assert.False(t, ok, "fresh store should have no location")

	saved := domain.StoredLocation{
		Latitude:  30.9010,
		Longitude: 75.8573,
		City:      "Ludhiana",
		Timestamp: 1770800000000,
	}
	require.NoError(t, store.Save(saved))

	got, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, saved, got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(domain.StoredLocation{City: "Ludhiana"}))
	require.NoError(t, store.Save(domain.StoredLocation{City: "Nashik"}))

	got, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "Nashik", got.City)
}

func TestStore_CorruptFileDiscarded(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o755))
	require.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0o644))

	_, ok := store.Load()
	assert.False(t, ok)

	// The corrupt file is removed so the next load does not re-log.
	_, err := os.Stat(store.path)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Clear(), "clearing an absent record is not an error")

	require.NoError(t, store.Save(domain.StoredLocation{City: "Nashik"}))
	require.NoError(t, store.Clear())

	_, ok := store.Load()
	assert.False(t, ok)
}

func TestStore_CheckReadiness(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.CheckReadiness())
}
