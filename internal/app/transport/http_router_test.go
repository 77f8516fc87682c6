package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/endpoints"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/airport"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var routerNow = time.Date(2026, 2, 24, 18, 0, 0, 0, time.UTC)

type stubFlightService struct{}

func (stubFlightService) GetBoard(_ context.Context, req dto.BoardRequest) (dto.BoardResponse, error) {
	return dto.BoardResponse{
		Airport:   req.Airport,
		Direction: req.Direction,
		Criteria:  req.FilterCriteria,
		Flights:   []dto.Flight{},
	}, nil
}

func (stubFlightService) LookupFlight(_ context.Context, req dto.LookupRequest) (dto.LookupResponse, error) {
	return dto.LookupResponse{Flight: dto.RawFlight{Flight: dto.RawFlightIdent{IATA: req.Flight}}}, nil
}

type stubAirportService struct{}

func (stubAirportService) SearchAirports(_ context.Context, req dto.AirportSearchRequest) (dto.AirportSearchResponse, error) {
	return dto.AirportSearchResponse{Airports: []airport.Airport{{Code: strings.ToUpper(req.Query)}}}, nil
}

func newTestRouter(clock clockwork.Clock) http.Handler {
	return MakeHTTPRouter(endpoints.Endpoints{
		FlightEndpoint:  endpoints.MakeFlightEndpoint(stubFlightService{}),
		AirportEndpoint: endpoints.MakeAirportEndpoint(stubAirportService{}),
	}, clock, nil)
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(clockwork.NewFakeClockAt(routerNow)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_Board_Closure(t *testing.T) {
	router := newTestRouter(clockwork.NewFakeClockAt(routerNow))

	boardRequest := func(body string, wantStatus int) func(t *testing.T) {
		return func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/board", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		}
	}

	t.Run("ok", boardRequest(`{"airport":"sfo","direction":"arrival"}`, http.StatusOK))
	t.Run("bad_airport", boardRequest(`{"airport":"SF","direction":"arrival"}`, http.StatusBadRequest))
	t.Run("bad_direction", boardRequest(`{"airport":"SFO","direction":"sideways"}`, http.StatusBadRequest))
	t.Run("bad_status", boardRequest(`{"airport":"SFO","direction":"arrival","status":"lost"}`, http.StatusBadRequest))
}

func TestRouter_Board_AppliesDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/board",
		strings.NewReader(`{"airport":"sfo","direction":"departure"}`))
	rec := httptest.NewRecorder()

	newTestRouter(clockwork.NewFakeClockAt(routerNow)).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.BoardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "SFO", got.Airport)
	assert.Equal(t, dto.TimeWindowUpcoming, got.Criteria.TimeWindow)
	assert.Equal(t, dto.SortByScheduled, got.Criteria.Sort)
}

func TestRouter_Airports(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(clockwork.NewFakeClockAt(routerNow)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/airports?q=sfo&limit=3", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"SFO"`)

	rec = httptest.NewRecorder()
	newTestRouter(clockwork.NewFakeClockAt(routerNow)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/airports?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func countdownURL(leaveBy time.Time) string {
	return "/api/v1/pickup/countdown?leave_by=" + leaveBy.Format(time.RFC3339)
}

func TestRouter_Countdown_PastLeaveBy(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(clockwork.NewFakeClockAt(routerNow)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, countdownURL(routerNow.Add(-time.Minute)), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/event-stream"))
	assert.Equal(t, 1, strings.Count(rec.Body.String(), "event: data"))
	assert.Contains(t, rec.Body.String(), `"seconds":0`)
	assert.Contains(t, rec.Body.String(), "event: EOF")
}

func TestRouter_Countdown_Ticks(t *testing.T) {
	clock := clockwork.NewFakeClockAt(routerNow)
	router := newTestRouter(clock)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, countdownURL(routerNow.Add(2*time.Second)), nil))
	}()

	for i := 0; i < 2; i++ {
		clock.BlockUntil(1)
		clock.Advance(time.Second)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("countdown stream did not finish")
	}

	body := rec.Body.String()
	assert.Equal(t, 3, strings.Count(body, "event: data"))
	assert.Less(t, strings.Index(body, `"seconds":2`), strings.Index(body, `"seconds":1`))
	assert.Less(t, strings.Index(body, `"seconds":1`), strings.Index(body, `"seconds":0`))
	assert.Contains(t, body, "event: EOF")
}

func TestRouter_Countdown_InvalidLeaveBy(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(clockwork.NewFakeClockAt(routerNow)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pickup/countdown?leave_by=soon", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "leave_by must be an RFC3339 timestamp")
}
