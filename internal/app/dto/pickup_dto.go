package dto

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
)

type PickupEstimateRequest struct {
	Flight  string `json:"flight" validate:"required,alphanum,max=10"`
	Address string `json:"address,omitempty" validate:"omitempty,max=300"`
}

func (p *PickupEstimateRequest) Bind(r *http.Request) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	p.Flight = strings.ToUpper(p.Flight)

	return nil
}

func (p *PickupEstimateRequest) Validate() error {
	p.Flight = strings.TrimSpace(p.Flight)
	p.Address = strings.TrimSpace(p.Address)

	return validateRequest(p)
}

type PickupEstimateResponse struct {
	Flight             Flight     `json:"flight"`
	ArrivalAirport     string     `json:"arrival_airport"`
	Timezone           string     `json:"timezone"`
	LandingAt          time.Time  `json:"landing_at"`
	LandingLocal       string     `json:"landing_local"`
	OtherFlights       int        `json:"other_flights"`
	BaggageWaitMinutes int        `json:"baggage_wait_minutes"`
	DriveMinutes       *int       `json:"drive_minutes,omitempty"`
	DriveFormatted     string     `json:"drive_formatted,omitempty"`
	LeaveBy            *time.Time `json:"leave_by,omitempty"`
	LeaveByLocal       string     `json:"leave_by_local,omitempty"`
	CountdownSeconds   int        `json:"countdown_seconds"`
	SharePath          string     `json:"share_path"`
	ArrivalsError      string     `json:"arrivals_error,omitempty"`
	DriveError         string     `json:"drive_error,omitempty"`
}

type DriveTimeRequest struct {
	Origin      string `json:"origin" validate:"required,max=300"`
	Destination string `json:"destination" validate:"required,max=300"`
}

func (d *DriveTimeRequest) Bind(r *http.Request) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (d *DriveTimeRequest) Validate() error {
	d.Origin = strings.TrimSpace(d.Origin)
	d.Destination = strings.TrimSpace(d.Destination)

	return validateRequest(d)
}

type DriveTimeResponse struct {
	DurationSeconds int `json:"durationSeconds"`
}

// AddressSuggestRequest is decoded from the query string.
type AddressSuggestRequest struct {
	Query string `json:"q" validate:"required,min=3,max=200"`
}

func (a *AddressSuggestRequest) Bind(r *http.Request) error {
	a.Query = strings.TrimSpace(r.URL.Query().Get("q"))

	if err := validateRequest(a); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

type AddressSuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// CountdownRequest is decoded from the query string.
type CountdownRequest struct {
	LeaveBy time.Time
}

func (c *CountdownRequest) Bind(r *http.Request) error {
	raw := strings.TrimSpace(r.URL.Query().Get("leave_by"))
	if raw == "" {
		return exception.ValidationError("leave_by is a required field")
	}

	leaveBy, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return exception.ValidationError("leave_by must be an RFC3339 timestamp")
	}

	c.LeaveBy = leaveBy.UTC()

	return nil
}

type CountdownEvent struct {
	LeaveBy time.Time `json:"leave_by"`
	Seconds int       `json:"seconds"`
}
