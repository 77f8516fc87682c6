//go:build unit

package flight

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

func TestSortFlights_Closure(t *testing.T) {
	sortRequest := func(key dto.SortKey, wantIDs []string) func(t *testing.T) {
		return func(t *testing.T) {
			input := boardFixture()
			got := SortFlights(input, key)

			diff := cmp.Diff(wantIDs, iatas(got))
			if diff != "" {
				t.Fatalf("SortFlights result mismatch (-want +got):\n%s", diff)
			}

			assert.Equal(t, []string{"UA1", "DL2", "AA3", "UA4", "DL5"}, iatas(input), "input must not be reordered")
		}
	}

	t.Run("scheduled", sortRequest(dto.SortByScheduled, []string{"AA3", "DL5", "UA4", "DL2", "UA1"}))
	t.Run("default_is_scheduled", sortRequest("", []string{"AA3", "DL5", "UA4", "DL2", "UA1"}))
	t.Run("estimated_falls_back_to_scheduled", sortRequest(dto.SortByEstimated,
		[]string{"AA3", "DL5", "UA4", "DL2", "UA1"}))
	t.Run("status_precedence_stable", sortRequest(dto.SortByStatus, []string{"DL2", "UA1", "AA3", "DL5", "UA4"}))
}

func TestSortFlights_EstimateReorders(t *testing.T) {
	base := time.Date(2026, 2, 24, 12, 0, 0, 0, time.UTC)
	flights := []dto.Flight{
		{FlightIata: "A", Scheduled: base, Estimated: base.Add(90 * time.Minute)},
		{FlightIata: "B", Scheduled: base.Add(time.Hour)},
	}

	assert.Equal(t, []string{"A", "B"}, iatas(SortFlights(flights, dto.SortByScheduled)))
	assert.Equal(t, []string{"B", "A"}, iatas(SortFlights(flights, dto.SortByEstimated)))
}

func TestSortFlights_StableAndMonotonic(t *testing.T) {
	base := time.Date(2026, 2, 24, 12, 0, 0, 0, time.UTC)
	flights := []dto.Flight{
		{FlightIata: "T1", Scheduled: base.Add(time.Hour)},
		{FlightIata: "T2", Scheduled: base},
		{FlightIata: "T3", Scheduled: base.Add(time.Hour)},
		{FlightIata: "T4", Scheduled: base},
		{FlightIata: "T5", Scheduled: base.Add(-time.Hour)},
	}

	got := SortFlights(flights, dto.SortByScheduled)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Scheduled.Before(got[i-1].Scheduled), "not monotonic at %d", i)
	}

	assert.Equal(t, []string{"T5", "T2", "T4", "T1", "T3"}, iatas(got))
}

func TestStatusRank(t *testing.T) {
	assert.Less(t, StatusRank(dto.StatusActive), StatusRank(dto.StatusScheduled))
	assert.Less(t, StatusRank(dto.StatusDiverted), StatusRank(dto.StatusIncident))
	assert.Less(t, StatusRank(dto.StatusCancelled), StatusRank("unknown"))
}
