package domain

import (
	"sort"
	"strings"
)

// GovernmentType identifies which tier of government runs a scheme.
type GovernmentType string

const (
	GovernmentCentral GovernmentType = "Central"
	GovernmentState   GovernmentType = "State"
)

// StateAllIndia is the record-side sentinel: a scheme whose State equals it
// applies nationwide and surfaces under every concrete state filter.
const StateAllIndia = "All India"

// Valid reports whether t is one of the two recognised government tiers.
func (t GovernmentType) Valid() bool {
	return t == GovernmentCentral || t == GovernmentState
}

// SchemeRecord is one government agricultural program. The catalog is loaded
// once per process and never mutated. Optional fields carry omitempty so an
// absent value is suppressed rather than rendered empty.
type SchemeRecord struct {
	ID                string         `json:"id"`
	SchemeName        string         `json:"scheme_name"`
	GovernmentType    GovernmentType `json:"government_type"`
	State             string         `json:"state"`
	Benefit           string         `json:"benefit"`
	Eligibility       string         `json:"eligibility"`
	Description       string         `json:"description,omitempty"`
	ApplicationLink   string         `json:"application_link,omitempty"`
	ContactPhone      string         `json:"contact_phone,omitempty"`
	OfficeAddress     string         `json:"office_address,omitempty"`
	DocumentsRequired string         `json:"documents_required,omitempty"`
	IncomeLimit       string         `json:"income_limit,omitempty"`
	FarmSizeLimit     string         `json:"farm_size_limit,omitempty"`
	LastUpdated       string         `json:"last_updated"`
}

// SchemeFilter selects scheme records. Zero-value fields pass everything.
type SchemeFilter struct {
	// State matches exactly, except that All-India schemes always pass and
	// StateAllIndia (or "All") as the filter value disables the predicate.
	State string
	// GovernmentType is "Central", "State", or "All"/empty for both.
	GovernmentType string
	// Keyword matches case-insensitively against scheme name, benefit,
	// eligibility, and description (logical OR).
	Keyword string
}

// Matches reports whether a scheme satisfies every non-omitted predicate.
func (f SchemeFilter) Matches(s SchemeRecord) bool {
	if f.State != "" && f.State != FilterAll && f.State != StateAllIndia &&
		s.State != StateAllIndia && s.State != f.State {
		return false
	}
	if f.GovernmentType != "" && f.GovernmentType != FilterAll &&
		string(s.GovernmentType) != f.GovernmentType {
		return false
	}
	if f.Keyword != "" {
		kw := strings.ToLower(f.Keyword)
		if !strings.Contains(strings.ToLower(s.SchemeName), kw) &&
			!strings.Contains(strings.ToLower(s.Benefit), kw) &&
			!strings.Contains(strings.ToLower(s.Eligibility), kw) &&
			!strings.Contains(strings.ToLower(s.Description), kw) {
			return false
		}
	}
	return true
}

// FilterSchemes returns the schemes matching the filter, preserving order.
func FilterSchemes(records []SchemeRecord, f SchemeFilter) []SchemeRecord {
	out := make([]SchemeRecord, 0, len(records))
	for _, s := range records {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// SchemeSortField names a sortable scheme column.
type SchemeSortField string

const (
	SortSchemesByName           SchemeSortField = "name"
	SortSchemesByGovernmentType SchemeSortField = "government_type"
)

// SortSchemes sorts in place, stably, ascending. The default (and any
// unknown field) is scheme name.
func SortSchemes(records []SchemeRecord, field SchemeSortField) {
	if field == SortSchemesByGovernmentType {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].GovernmentType < records[j].GovernmentType
		})
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SchemeName < records[j].SchemeName
	})
}
