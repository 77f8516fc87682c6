package flight

import (
	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flighttime"
)

// DefaultTimezone is used when the provider omits the airport timezone.
const DefaultTimezone = "UTC"

// ProjectDeparture maps a raw record into the departure-board view: times, timezone and
// delay come from the departure side.
func ProjectDeparture(raw dto.RawFlight) dto.Flight {
	return project(raw, raw.Departure)
}

// ProjectArrival maps a raw record into the arrival-board view: times, timezone and
// delay come from the arrival side.
func ProjectArrival(raw dto.RawFlight) dto.Flight {
	return project(raw, raw.Arrival)
}

func Project(raw dto.RawFlight, direction dto.Direction) dto.Flight {
	if direction == dto.DirectionArrival {
		return ProjectArrival(raw)
	}

	return ProjectDeparture(raw)
}

func ProjectAll(raws []dto.RawFlight, direction dto.Direction) []dto.Flight {
	results := make([]dto.Flight, len(raws))
	for i, raw := range raws {
		results[i] = Project(raw, direction)
	}

	return results
}

func project(raw dto.RawFlight, side dto.RawFlightPoint) dto.Flight {
	timezone := side.Timezone
	if timezone == "" {
		timezone = DefaultTimezone
	}

	scheduled, _ := flighttime.ToInstant(side.Scheduled)
	estimated, _ := flighttime.ToInstant(side.Estimated)

	return dto.Flight{
		FlightNumber:    raw.Flight.Number,
		FlightIata:      flightIata(raw),
		Airline:         raw.Airline.Name,
		AirlineIata:     raw.Airline.IATA,
		Origin:          raw.Departure.Airport,
		OriginIata:      raw.Departure.IATA,
		Destination:     raw.Arrival.Airport,
		DestinationIata: raw.Arrival.IATA,
		Scheduled:       scheduled,
		Estimated:       estimated,
		Timezone:        timezone,
		Status:          raw.FlightStatus,
		StatusLabel:     StatusLabel(raw.FlightStatus),
		DelayMinutes:    side.Delay,
	}
}

func flightIata(raw dto.RawFlight) string {
	if raw.Flight.IATA != "" {
		return raw.Flight.IATA
	}

	return raw.Airline.IATA + raw.Flight.Number
}

// Localize fills the local scheduled/estimated labels of each flight, rendered in the
// flight's own airport timezone.
func Localize(flights []dto.Flight) {
	for i := range flights {
		flights[i].ScheduledLocal = flighttime.FormatInTimezone(flights[i].Scheduled,
			flights[i].Timezone, flighttime.StyleTime)

		if !flights[i].Estimated.IsZero() {
			flights[i].EstimatedLocal = flighttime.FormatInTimezone(flights[i].Estimated,
				flights[i].Timezone, flighttime.StyleTime)
		}
	}
}
