package service

import (
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
)

var ErrFlightNotFound = exception.NotFoundError("Flight not found or no arrival data.")

var ErrNoArrivalAirport = exception.NotFoundError("Flight has no arrival airport.")
