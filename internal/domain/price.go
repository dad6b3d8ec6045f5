package domain

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// FilterAll is the filter-side wildcard: a filter field set to "All"
// (or left empty) disables that predicate.
const FilterAll = "All"

// FlexString is a JSON field that may arrive as a string or a number.
// Either form is kept as its textual representation; anything else
// decodes to the empty string rather than failing the whole record.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

// RawPriceRecord is the shape of a single Agmarknet record as it comes off
// the wire, before any coercion.
type RawPriceRecord struct {
	Commodity   string     `json:"commodity"`
	State       string     `json:"state"`
	District    string     `json:"district"`
	Market      string     `json:"market"`
	MinPrice    FlexString `json:"min_price"`
	MaxPrice    FlexString `json:"max_price"`
	ModalPrice  FlexString `json:"modal_price"`
	ArrivalDate string     `json:"arrival_date"`
	Grade       string     `json:"grade"`
}

// PriceRecord is the normalized mandi price entry. Prices are rupees per
// quintal. ArrivalDate stays an opaque upstream date string; it is only
// parsed for display.
type PriceRecord struct {
	Commodity   string  `json:"commodity"`
	State       string  `json:"state"`
	District    string  `json:"district"`
	Market      string  `json:"market"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	ModalPrice  float64 `json:"modal_price"`
	ArrivalDate string  `json:"arrival_date"`
	Grade       string  `json:"grade,omitempty"`
}

// Key returns the record's uniqueness key: one price per commodity per market.
func (p PriceRecord) Key() string {
	return p.Commodity + "|" + p.Market
}

// NormalizePrice coerces a raw upstream record into a PriceRecord.
// Price fields that are absent or unparseable become 0 so a partial record
// still renders. Pure function.
func NormalizePrice(raw RawPriceRecord) PriceRecord {
	return PriceRecord{
		Commodity:   strings.TrimSpace(raw.Commodity),
		State:       strings.TrimSpace(raw.State),
		District:    strings.TrimSpace(raw.District),
		Market:      strings.TrimSpace(raw.Market),
		MinPrice:    parseFloatOrZero(string(raw.MinPrice)),
		MaxPrice:    parseFloatOrZero(string(raw.MaxPrice)),
		ModalPrice:  parseFloatOrZero(string(raw.ModalPrice)),
		ArrivalDate: strings.TrimSpace(raw.ArrivalDate),
		Grade:       strings.TrimSpace(raw.Grade),
	}
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// PriceFilter selects price records. Zero-value fields (or "All") pass
// everything.
type PriceFilter struct {
	Commodity string
	State     string
	District  string
}

// Matches reports whether a record satisfies every non-omitted predicate.
// Commodity matches on case-insensitive substring; state and district are
// exact.
func (f PriceFilter) Matches(p PriceRecord) bool {
	if f.Commodity != "" && f.Commodity != FilterAll &&
		!strings.Contains(strings.ToLower(p.Commodity), strings.ToLower(f.Commodity)) {
		return false
	}
	if f.State != "" && f.State != FilterAll && p.State != f.State {
		return false
	}
	if f.District != "" && f.District != FilterAll && p.District != f.District {
		return false
	}
	return true
}

// FilterPrices returns the records matching the filter, preserving order.
func FilterPrices(records []PriceRecord, f PriceFilter) []PriceRecord {
	out := make([]PriceRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// PriceSortField names a sortable price column.
type PriceSortField string

const (
	SortByCommodity   PriceSortField = "commodity"
	SortByState       PriceSortField = "state"
	SortByMarket      PriceSortField = "market"
	SortByMinPrice    PriceSortField = "min_price"
	SortByMaxPrice    PriceSortField = "max_price"
	SortByModalPrice  PriceSortField = "modal_price"
	SortByArrivalDate PriceSortField = "arrival_date"
)

// SortOrder is a sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortPrices sorts in place, stably, by the given column. Price columns
// compare numerically; everything else lexicographically. Unknown fields
// fall back to the default: modal price descending.
func SortPrices(records []PriceRecord, field PriceSortField, order SortOrder) {
	key := priceKeyFunc(field)
	if key == nil {
		key = priceKeyFunc(SortByModalPrice)
		order = SortDesc
	}
	if order == SortDesc {
		sort.SliceStable(records, func(i, j int) bool { return key(records[j], records[i]) })
		return
	}
	sort.SliceStable(records, func(i, j int) bool { return key(records[i], records[j]) })
}

// priceKeyFunc returns a strict less-than comparator for the field, or nil
// when the field is not sortable.
func priceKeyFunc(field PriceSortField) func(a, b PriceRecord) bool {
	switch field {
	case SortByCommodity:
		return func(a, b PriceRecord) bool { return a.Commodity < b.Commodity }
	case SortByState:
		return func(a, b PriceRecord) bool { return a.State < b.State }
	case SortByMarket:
		return func(a, b PriceRecord) bool { return a.Market < b.Market }
	case SortByMinPrice:
		return func(a, b PriceRecord) bool { return a.MinPrice < b.MinPrice }
	case SortByMaxPrice:
		return func(a, b PriceRecord) bool { return a.MaxPrice < b.MaxPrice }
	case SortByModalPrice:
		return func(a, b PriceRecord) bool { return a.ModalPrice < b.ModalPrice }
	case SortByArrivalDate:
		return func(a, b PriceRecord) bool { return a.ArrivalDate < b.ArrivalDate }
	default:
		return nil
	}
}
