package routing

import (
	"sort"

	"wayfinder.gobus.org/internal/models"
)

// Finalize merges single-leg and multi-leg results into one deduplicated,
// ranked itinerary list. Single legs are wrapped as one-leg itineraries for
// uniform handling. Duplicates share a canonical key (the ordered trip and
// index tuples of their legs); the first occurrence wins, making the pass
// deterministic and idempotent. Ranking orders by leg count, then total
// duration, then origin departure time; ties keep their stable post-sort
// order. No feasibility logic runs here; inputs are already valid.
func Finalize(singleLegs []models.Leg, multiLeg []models.Itinerary) []models.Itinerary {
	combined := make([]models.Itinerary, 0, len(singleLegs)+len(multiLeg))
	for _, leg := range singleLegs {
		combined = append(combined, models.NewItinerary([]models.Leg{leg}))
	}
	combined = append(combined, multiLeg...)

	seen := make(map[string]bool, len(combined))
	deduped := combined[:0]
	for _, itinerary := range combined {
		if seen[itinerary.Key] {
			continue
		}
		seen[itinerary.Key] = true
		deduped = append(deduped, itinerary)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		a, b := deduped[i], deduped[j]
		if len(a.Legs) != len(b.Legs) {
			return len(a.Legs) < len(b.Legs)
		}
		if a.TotalDuration != b.TotalDuration {
			return a.TotalDuration < b.TotalDuration
		}
		return a.OriginDeparture() < b.OriginDeparture()
	})

	return deduped
}
