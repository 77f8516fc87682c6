package aviationstack

import "github.com/ijalalfrz/flight-pickup-service/internal/app/dto"

// FlightsResponse is the /v1/flights payload. A failed request carries Error instead of
// Data, sometimes with a 200 status.
type FlightsResponse struct {
	Pagination *Pagination     `json:"pagination,omitempty"`
	Data       []dto.RawFlight `json:"data"`
	Error      *APIError       `json:"error,omitempty"`
}

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Total  int `json:"total"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
