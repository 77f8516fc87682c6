package dto

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/airport"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
)

// AirportSearchRequest is decoded from the query string.
type AirportSearchRequest struct {
	Query string `json:"q" validate:"max=100"`
	Limit int    `json:"limit" validate:"gte=0,lte=50"`
}

func (a *AirportSearchRequest) Bind(r *http.Request) error {
	query := r.URL.Query()
	a.Query = strings.TrimSpace(query.Get("q"))

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("error validate request: %w",
				exception.ValidationError("limit must be a valid numeric value"))
		}
		a.Limit = limit
	}

	if err := validateRequest(a); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

type AirportSearchResponse struct {
	Airports []airport.Airport `json:"airports"`
}
