package flight

import (
	"sort"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
)

// SortFlights returns a sorted copy. Time sorts put the soonest instant first in both
// time windows; the status sort follows the status precedence table. Ties keep input
// order.
func SortFlights(flights []dto.Flight, key dto.SortKey) []dto.Flight {
	results := make([]dto.Flight, len(flights))
	copy(results, flights)

	switch key {
	case dto.SortByEstimated:
		sort.SliceStable(results, func(i, j int) bool {
			return EffectiveInstant(results[i]).Before(EffectiveInstant(results[j]))
		})
	case dto.SortByStatus:
		sort.SliceStable(results, func(i, j int) bool {
			return StatusRank(results[i].Status) < StatusRank(results[j].Status)
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Scheduled.Before(results[j].Scheduled)
		})
	}

	return results
}
