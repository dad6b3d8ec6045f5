package fallback

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/krishikendra/agri-data-service/internal/domain"
)

// priceSeed fixes the generator so the sample set is identical across
// restarts; filters applied twice see the same rows.
const priceSeed = 42

// sampleArrivalDate is stamped on every generated record.
const sampleArrivalDate = "2026-02-08"

var (
	priceOnce    sync.Once
	samplePrices []domain.PriceRecord
)

// generate builds the state x commodity cross product with plausible,
// seeded price bands (min 500-3499, max 1500-6499, modal 1000-4999 Rs/qtl).
func generate() []domain.PriceRecord {
	rng := rand.New(rand.NewSource(priceSeed))
	out := make([]domain.PriceRecord, 0, len(indianStates)*len(sampleCommodities))
	for _, state := range indianStates {
		district := strings.Fields(state)[0]
		market := state + " Market"
		for _, commodity := range sampleCommodities {
			out = append(out, domain.PriceRecord{
				State:       state,
				District:    district,
				Market:      market,
				Commodity:   commodity,
				Grade:       "A",
				ArrivalDate: sampleArrivalDate,
				MinPrice:    float64(500 + rng.Intn(3000)),
				MaxPrice:    float64(1500 + rng.Intn(5000)),
				ModalPrice:  float64(1000 + rng.Intn(4000)),
			})
		}
	}
	return out
}

// Prices returns the full sample price set. Generated once, then memoized.
func Prices() []domain.PriceRecord {
	priceOnce.Do(func() {
		samplePrices = generate()
	})
	return samplePrices
}

// QueryPrices filters the sample set with the same matching rules the live
// path uses, so a fallback response honors the caller's filter.
func QueryPrices(f domain.PriceFilter) []domain.PriceRecord {
	return domain.FilterPrices(Prices(), f)
}
