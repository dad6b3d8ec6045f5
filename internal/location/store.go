// Package location resolves the active location for a request and persists
// the last named resolution across restarts.
package location

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/krishikendra/agri-data-service/internal/domain"
)

// Store persists the single last-known-location record as a JSON file.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a torn record.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a location store backed by the given file path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads the persisted location. The boolean is false when no location
// has been saved. A corrupt file is discarded, logged, and treated as
// absent rather than surfaced as an error.
func (s *Store) Load() (domain.StoredLocation, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read saved location", "path", s.path, "error", err)
		}
		return domain.StoredLocation{}, false
	}

	var loc domain.StoredLocation
	if err := json.Unmarshal(data, &loc); err != nil {
		s.logger.Warn("discarding corrupt saved location", "path", s.path, "error", err)
		_ = os.Remove(s.path)
		return domain.StoredLocation{}, false
	}
	return loc, true
}

// Save overwrites the persisted location atomically.
func (s *Store) Save(loc domain.StoredLocation) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("marshal location: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create location dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "location-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write location: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace location file: %w", err)
	}
	return nil
}

// Clear removes the persisted location. Clearing an absent record is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear location: %w", err)
	}
	return nil
}

// CheckReadiness verifies the store's directory is writable. Used by the
// readiness probe.
func (s *Store) CheckReadiness() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("location dir not writable: %w", err)
	}
	return nil
}
