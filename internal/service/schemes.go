package service

import (
	"sort"

	"github.com/krishikendra/agri-data-service/internal/domain"
	"github.com/krishikendra/agri-data-service/internal/fallback"
)

// SchemeService serves the in-process government scheme catalog.
type SchemeService struct{}

// NewSchemeService creates a scheme lookup service.
func NewSchemeService() *SchemeService {
	return &SchemeService{}
}

// List returns the schemes matching the filter, sorted.
func (s *SchemeService) List(f domain.SchemeFilter, sortBy domain.SchemeSortField) []domain.SchemeRecord {
	records := domain.FilterSchemes(fallback.Schemes(), f)
	domain.SortSchemes(records, sortBy)
	return records
}

// ByID looks a scheme up by its slug.
func (s *SchemeService) ByID(id string) (domain.SchemeRecord, bool) {
	return fallback.SchemeByID(id)
}

// StatesWithSchemes returns the distinct states appearing in the catalog:
// All India first, then the rest sorted.
func (s *SchemeService) StatesWithSchemes() []string {
	seen := map[string]bool{}
	var states []string
	for _, rec := range fallback.Schemes() {
		if rec.State == domain.StateAllIndia || seen[rec.State] {
			continue
		}
		seen[rec.State] = true
		states = append(states, rec.State)
	}
	sort.Strings(states)
	return append([]string{domain.StateAllIndia}, states...)
}
