package dto

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

type FlightStatus string

const (
	StatusScheduled FlightStatus = "scheduled"
	StatusActive    FlightStatus = "active"
	StatusLanded    FlightStatus = "landed"
	StatusCancelled FlightStatus = "cancelled"
	StatusIncident  FlightStatus = "incident"
	StatusDiverted  FlightStatus = "diverted"
)

type Direction string

const (
	DirectionDeparture Direction = "departure"
	DirectionArrival   Direction = "arrival"
)

type TimeWindow string

const (
	TimeWindowUpcoming   TimeWindow = "upcoming"
	TimeWindowHistorical TimeWindow = "historical"
)

type StatusCategory string

const (
	StatusCategoryAll       StatusCategory = "all"
	StatusCategoryDelayed   StatusCategory = "delayed"
	StatusCategoryOnTime    StatusCategory = "on_time"
	StatusCategoryScheduled StatusCategory = "scheduled"
	StatusCategoryCancelled StatusCategory = "cancelled"
	StatusCategoryInFlight  StatusCategory = "in_flight"
)

type SortKey string

const (
	SortByScheduled SortKey = "scheduled"
	SortByEstimated SortKey = "estimated"
	SortByStatus    SortKey = "status"
)

// RawFlight is a flight record as returned by the flight-data provider. Timestamps are
// kept as the provider sent them; nullable provider fields decode to their zero value.
type RawFlight struct {
	FlightDate   string         `json:"flight_date"`
	FlightStatus FlightStatus   `json:"flight_status"`
	Departure    RawFlightPoint `json:"departure"`
	Arrival      RawFlightPoint `json:"arrival"`
	Airline      RawAirline     `json:"airline"`
	Flight       RawFlightIdent `json:"flight"`
}

type RawFlightPoint struct {
	Airport   string `json:"airport"`
	Timezone  string `json:"timezone"`
	IATA      string `json:"iata"`
	ICAO      string `json:"icao,omitempty"`
	Terminal  string `json:"terminal,omitempty"`
	Gate      string `json:"gate,omitempty"`
	Baggage   string `json:"baggage,omitempty"`
	Delay     *int   `json:"delay"`
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated,omitempty"`
	Actual    string `json:"actual,omitempty"`
}

type RawAirline struct {
	Name string `json:"name"`
	IATA string `json:"iata,omitempty"`
	ICAO string `json:"icao,omitempty"`
}

type RawFlightIdent struct {
	Number string `json:"number"`
	IATA   string `json:"iata,omitempty"`
	ICAO   string `json:"icao,omitempty"`
}

// Flight is the display projection of a RawFlight for one side of the trip. Scheduled,
// Estimated, Timezone and DelayMinutes belong to the departure side in departure views and
// to the arrival side in arrival views.
type Flight struct {
	FlightNumber    string       `json:"flight_number"`
	FlightIata      string       `json:"flight_iata"`
	Airline         string       `json:"airline"`
	AirlineIata     string       `json:"airline_iata,omitempty"`
	Origin          string       `json:"origin"`
	OriginIata      string       `json:"origin_iata"`
	Destination     string       `json:"destination"`
	DestinationIata string       `json:"destination_iata"`
	Scheduled       time.Time    `json:"scheduled,omitzero"`
	Estimated       time.Time    `json:"estimated,omitzero"`
	Timezone        string       `json:"timezone"`
	Status          FlightStatus `json:"status"`
	StatusLabel     string       `json:"status_label,omitempty"`
	DelayMinutes    *int         `json:"delay_minutes,omitempty"`
	ScheduledLocal  string       `json:"scheduled_local,omitempty"`
	EstimatedLocal  string       `json:"estimated_local,omitempty"`
}

// FilterCriteria selects and orders a flight list.
type FilterCriteria struct {
	TimeWindow TimeWindow     `json:"time_window" validate:"omitempty,oneof=upcoming historical"`
	Airline    string         `json:"airline,omitempty"`
	Place      string         `json:"place,omitempty"`
	Status     StatusCategory `json:"status" validate:"omitempty,oneof=all delayed on_time scheduled cancelled in_flight"`
	Sort       SortKey        `json:"sort" validate:"omitempty,oneof=scheduled estimated status"`
}

// WithDefaults fills unset fields: upcoming window, all statuses, scheduled order.
func (c FilterCriteria) WithDefaults() FilterCriteria {
	if c.TimeWindow == "" {
		c.TimeWindow = TimeWindowUpcoming
	}

	if c.Status == "" {
		c.Status = StatusCategoryAll
	}

	if c.Sort == "" {
		c.Sort = SortByScheduled
	}

	c.Place = strings.ToUpper(strings.TrimSpace(c.Place))

	return c
}

type BoardRequest struct {
	Airport   string    `json:"airport" validate:"required,len=3,alpha"`
	Direction Direction `json:"direction" validate:"required,oneof=departure arrival"`
	FilterCriteria
}

func (b *BoardRequest) Bind(r *http.Request) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	b.Airport = strings.ToUpper(b.Airport)
	b.FilterCriteria = b.FilterCriteria.WithDefaults()

	return nil
}

func (b *BoardRequest) Validate() error {
	b.Airport = strings.TrimSpace(b.Airport)

	return validateRequest(b)
}

type PlaceOption struct {
	Iata string `json:"iata"`
	Name string `json:"name"`
}

// FilterOptions lists the airline and place choices present in the current time window.
type FilterOptions struct {
	Airlines []string      `json:"airlines"`
	Places   []PlaceOption `json:"places"`
}

type Metadata struct {
	TotalResults  int       `json:"total_results"`
	TotalInWindow int       `json:"total_in_window"`
	SearchTimeMs  int       `json:"search_time_ms"`
	CacheHit      bool      `json:"cache_hit"`
	FetchedAt     time.Time `json:"fetched_at,omitzero"`
	LastUpdated   string    `json:"last_updated,omitempty"`
}

// CacheMetadata is stored next to cached provider results.
type CacheMetadata struct {
	FetchedAt time.Time `json:"fetched_at"`
	Count     int       `json:"count"`
}

type BoardResponse struct {
	Airport     string         `json:"airport"`
	AirportName string         `json:"airport_name,omitempty"`
	Direction   Direction      `json:"direction"`
	Timezone    string         `json:"timezone"`
	Criteria    FilterCriteria `json:"criteria"`
	Options     FilterOptions  `json:"options"`
	Metadata    Metadata       `json:"metadata"`
	Flights     []Flight       `json:"flights"`
}

type LookupRequest struct {
	Flight string `json:"flight" validate:"required,alphanum,max=10"`
}

func (l *LookupRequest) Bind(r *http.Request) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	l.Flight = strings.ToUpper(l.Flight)

	return nil
}

func (l *LookupRequest) Validate() error {
	l.Flight = strings.TrimSpace(l.Flight)

	return validateRequest(l)
}

type LookupResponse struct {
	Flight RawFlight   `json:"flight"`
	All    []RawFlight `json:"all"`
}
