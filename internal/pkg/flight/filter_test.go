//go:build unit

package flight

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

var cutoff = time.Date(2026, 2, 24, 8, 0, 0, 0, time.UTC)

func boardFixture() []dto.Flight {
	return []dto.Flight{
		{FlightIata: "UA1", Airline: "United", DestinationIata: "JFK", Destination: "New York JFK",
			OriginIata: "LAX", Origin: "Los Angeles", Status: dto.StatusScheduled,
			Scheduled: cutoff.Add(2 * time.Hour)},
		{FlightIata: "DL2", Airline: "Delta", DestinationIata: "ATL", Destination: "Atlanta",
			OriginIata: "SEA", Origin: "Seattle", Status: dto.StatusActive, DelayMinutes: intPtr(25),
			Scheduled: cutoff.Add(time.Hour), Estimated: cutoff.Add(85 * time.Minute)},
		{FlightIata: "AA3", Airline: "American", DestinationIata: "JFK", Destination: "New York JFK",
			OriginIata: "ORD", Origin: "Chicago", Status: dto.StatusLanded, DelayMinutes: intPtr(0),
			Scheduled: cutoff.Add(-3 * time.Hour)},
		{FlightIata: "UA4", Airline: "United", DestinationIata: "SFO", Destination: "San Francisco",
			OriginIata: "DEN", Origin: "Denver", Status: dto.StatusCancelled,
			Scheduled: cutoff},
		{FlightIata: "DL5", Airline: "Delta", DestinationIata: "MIA", Destination: "Miami",
			OriginIata: "BOS", Origin: "Boston", Status: dto.StatusLanded, DelayMinutes: intPtr(40),
			Scheduled: cutoff.Add(-time.Minute)},
	}
}

func iatas(flights []dto.Flight) []string {
	out := make([]string, len(flights))
	for i, f := range flights {
		out[i] = f.FlightIata
	}

	return out
}

func TestPartitionByTimeWindow(t *testing.T) {
	partitionRequest := func(window dto.TimeWindow, want []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := iatas(PartitionByTimeWindow(boardFixture(), window, cutoff))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("PartitionByTimeWindow mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("upcoming_includes_cutoff", partitionRequest(dto.TimeWindowUpcoming, []string{"UA1", "DL2", "UA4"}))
	t.Run("historical", partitionRequest(dto.TimeWindowHistorical, []string{"AA3", "DL5"}))

	t.Run("strict_bipartition", func(t *testing.T) {
		up := PartitionByTimeWindow(boardFixture(), dto.TimeWindowUpcoming, cutoff)
		hist := PartitionByTimeWindow(boardFixture(), dto.TimeWindowHistorical, cutoff)
		assert.Equal(t, len(boardFixture()), len(up)+len(hist))
	})

	t.Run("estimate_moves_flight_across_cutoff", func(t *testing.T) {
		late := []dto.Flight{{FlightIata: "LATE", Scheduled: cutoff.Add(-10 * time.Minute),
			Estimated: cutoff.Add(5 * time.Minute)}}
		assert.Len(t, PartitionByTimeWindow(late, dto.TimeWindowUpcoming, cutoff), 1)
	})
}

func TestFilterFlights(t *testing.T) {
	filterRequest := func(direction dto.Direction, criteria dto.FilterCriteria, wantIDs []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FilterFlights(boardFixture(), direction, criteria)

			diff := cmp.Diff(wantIDs, iatas(got))
			if diff != "" {
				t.Fatalf("FilterFlights mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("no_criteria", filterRequest(dto.DirectionDeparture, dto.FilterCriteria{},
		[]string{"UA1", "DL2", "AA3", "UA4", "DL5"}))
	t.Run("airline_exact", filterRequest(dto.DirectionDeparture, dto.FilterCriteria{Airline: "United"},
		[]string{"UA1", "UA4"}))
	t.Run("airline_case_sensitive", filterRequest(dto.DirectionDeparture, dto.FilterCriteria{Airline: "united"},
		[]string{}))
	t.Run("place_is_destination_on_departures", filterRequest(dto.DirectionDeparture, dto.FilterCriteria{Place: "JFK"},
		[]string{"UA1", "AA3"}))
	t.Run("place_is_origin_on_arrivals", filterRequest(dto.DirectionArrival, dto.FilterCriteria{Place: "SEA"},
		[]string{"DL2"}))
	t.Run("delayed", filterRequest(dto.DirectionDeparture, dto.FilterCriteria{Status: dto.StatusCategoryDelayed},
		[]string{"DL2", "DL5"}))
	t.Run("on_time", filterRequest(dto.DirectionDeparture, dto.FilterCriteria{Status: dto.StatusCategoryOnTime},
		[]string{"UA1", "AA3"}))
	t.Run("in_flight", filterRequest(dto.DirectionDeparture, dto.FilterCriteria{Status: dto.StatusCategoryInFlight},
		[]string{"DL2"}))
	t.Run("cancelled", filterRequest(dto.DirectionDeparture, dto.FilterCriteria{Status: dto.StatusCategoryCancelled},
		[]string{"UA4"}))
	t.Run("combined", filterRequest(dto.DirectionDeparture,
		dto.FilterCriteria{Airline: "Delta", Status: dto.StatusCategoryDelayed, Place: "MIA"},
		[]string{"DL5"}))
}

func TestFilterFlights_Idempotent(t *testing.T) {
	criteria := dto.FilterCriteria{Airline: "Delta", Status: dto.StatusCategoryDelayed}

	once := FilterFlights(boardFixture(), dto.DirectionDeparture, criteria)
	twice := FilterFlights(once, dto.DirectionDeparture, criteria)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("second filter changed result (-once +twice):\n%s", diff)
	}
}

func TestAvailableOptions(t *testing.T) {
	windowed := PartitionByTimeWindow(boardFixture(), dto.TimeWindowUpcoming, cutoff)

	got := AvailableOptions(windowed, dto.DirectionDeparture)
	want := dto.FilterOptions{
		Airlines: []string{"Delta", "United"},
		Places: []dto.PlaceOption{
			{Iata: "ATL", Name: "Atlanta"},
			{Iata: "JFK", Name: "New York JFK"},
			{Iata: "SFO", Name: "San Francisco"},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("AvailableOptions mismatch (-want +got):\n%s", diff)
	}

	empty := AvailableOptions(nil, dto.DirectionArrival)
	assert.NotNil(t, empty.Airlines)
	assert.NotNil(t, empty.Places)
}
