package flight

import (
	"sort"
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
)

// PartitionByTimeWindow keeps the flights on the requested side of cutoff. A flight whose
// effective instant equals cutoff is upcoming.
func PartitionByTimeWindow(flights []dto.Flight, window dto.TimeWindow, cutoff time.Time) []dto.Flight {
	results := make([]dto.Flight, 0, len(flights))

	for _, flight := range flights {
		upcoming := !EffectiveInstant(flight).Before(cutoff)
		if upcoming == (window != dto.TimeWindowHistorical) {
			results = append(results, flight)
		}
	}

	return results
}

// FilterFlights applies the airline, place and status criteria in that order. Unset
// criteria pass every flight.
func FilterFlights(flights []dto.Flight, direction dto.Direction, criteria dto.FilterCriteria) []dto.Flight {
	results := make([]dto.Flight, 0, len(flights))

	for _, flight := range flights {
		if criteria.Airline != "" && flight.Airline != criteria.Airline {
			continue
		}

		if criteria.Place != "" && otherEndIata(flight, direction) != criteria.Place {
			continue
		}

		if !MatchesStatus(flight, criteria.Status) {
			continue
		}

		results = append(results, flight)
	}

	return results
}

// MatchesStatus reports whether the flight belongs to the status category.
func MatchesStatus(flight dto.Flight, category dto.StatusCategory) bool {
	switch category {
	case dto.StatusCategoryDelayed:
		return delayOf(flight) > 0
	case dto.StatusCategoryOnTime:
		return delayOf(flight) == 0 &&
			(flight.Status == dto.StatusScheduled || flight.Status == dto.StatusLanded)
	case dto.StatusCategoryScheduled:
		return flight.Status == dto.StatusScheduled
	case dto.StatusCategoryCancelled:
		return flight.Status == dto.StatusCancelled
	case dto.StatusCategoryInFlight:
		return flight.Status == dto.StatusActive
	default:
		return true
	}
}

// AvailableOptions lists the distinct airlines and other-end places of the flights,
// sorted by name. Pass the time-partitioned set so every option has results.
func AvailableOptions(flights []dto.Flight, direction dto.Direction) dto.FilterOptions {
	airlines := make([]string, 0)
	places := make([]dto.PlaceOption, 0)
	seenAirline := make(map[string]struct{})
	seenPlace := make(map[string]struct{})

	for _, flight := range flights {
		if flight.Airline != "" {
			if _, ok := seenAirline[flight.Airline]; !ok {
				seenAirline[flight.Airline] = struct{}{}
				airlines = append(airlines, flight.Airline)
			}
		}

		iata := otherEndIata(flight, direction)
		if iata == "" {
			continue
		}

		if _, ok := seenPlace[iata]; !ok {
			seenPlace[iata] = struct{}{}
			places = append(places, dto.PlaceOption{Iata: iata, Name: otherEndName(flight, direction)})
		}
	}

	sort.Strings(airlines)
	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Name < places[j].Name
	})

	return dto.FilterOptions{Airlines: airlines, Places: places}
}

func delayOf(flight dto.Flight) int {
	if flight.DelayMinutes == nil {
		return 0
	}

	return *flight.DelayMinutes
}

// otherEndIata is the destination on a departure board and the origin on an arrival board.
func otherEndIata(flight dto.Flight, direction dto.Direction) string {
	if direction == dto.DirectionArrival {
		return flight.OriginIata
	}

	return flight.DestinationIata
}

func otherEndName(flight dto.Flight, direction dto.Direction) string {
	if direction == dto.DirectionArrival {
		return flight.Origin
	}

	return flight.Destination
}
