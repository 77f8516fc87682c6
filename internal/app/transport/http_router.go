package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/flight-pickup-service/internal/pkg/transport/http"
	"github.com/jonboulle/clockwork"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	endpts endpoints.Endpoints,
	clock clockwork.Clock,
	allowedOrigins []string,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(allowedOrigins),
			httptransport.Recoverer(slog.Default()),
		)

		router.Group(func(router chi.Router) {
			router.Use(render.SetContentType(render.ContentTypeJSON))

			router.Post("/flights/board", httptransport.MakeHandlerFunc(
				endpts.FlightEndpoint.GetBoard,
				httptransport.DecodeRequest[dto.BoardRequest],
				httptransport.ResponseWithBody,
			))

			router.Post("/flights/lookup", httptransport.MakeHandlerFunc(
				endpts.FlightEndpoint.LookupFlight,
				httptransport.DecodeRequest[dto.LookupRequest],
				httptransport.ResponseWithBody,
			))

			router.Post("/pickup/estimate", httptransport.MakeHandlerFunc(
				endpts.PickupEndpoint.Estimate,
				httptransport.DecodeRequest[dto.PickupEstimateRequest],
				httptransport.ResponseWithBody,
			))

			router.Post("/drive-time", httptransport.MakeHandlerFunc(
				endpts.PickupEndpoint.DriveTime,
				httptransport.DecodeRequest[dto.DriveTimeRequest],
				httptransport.ResponseWithBody,
			))

			router.Get("/addresses", httptransport.MakeHandlerFunc(
				endpts.PickupEndpoint.SuggestAddresses,
				httptransport.DecodeQuery[dto.AddressSuggestRequest],
				httptransport.ResponseWithBody,
			))

			router.Get("/airports", httptransport.MakeHandlerFunc(
				endpts.AirportEndpoint.SearchAirports,
				httptransport.DecodeQuery[dto.AirportSearchRequest],
				httptransport.ResponseWithBody,
			))
		})

		router.With(render.SetContentType(render.ContentTypeEventStream)).
			Get("/pickup/countdown", makeCountdownHandler(clock))
	})

	return router
}
