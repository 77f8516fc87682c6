package service

import (
	"context"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/airport"
)

type AirportService struct {
	Airports AirportDirectory
}

func NewAirportService(airports AirportDirectory) *AirportService {
	return &AirportService{
		Airports: airports,
	}
}

// SearchAirports godoc
// @Summary      Airport search
// @Tags         Airports
// @Param        q      query     string  false  "Code, name or city"
// @Param        limit  query     int     false  "Maximum results"
// @Success      200    {object}  dto.AirportSearchResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/v1/airports [get]
func (s *AirportService) SearchAirports(_ context.Context, req dto.AirportSearchRequest) (dto.AirportSearchResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = airport.DefaultSearchLimit
	}

	airports := s.Airports.Search(req.Query, limit)
	if airports == nil {
		airports = []airport.Airport{}
	}

	return dto.AirportSearchResponse{Airports: airports}, nil
}
