package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupEcho(_ context.Context, req interface{}) (interface{}, error) {
	lookup := req.(*dto.LookupRequest)
	if lookup.Flight == "BOOM1" {
		return nil, errors.New("unexpected failure")
	}

	if lookup.Flight == "ZZ999" {
		return nil, exception.NotFoundError("Flight not found or no arrival data.")
	}

	return dto.Response{Message: lookup.Flight}, nil
}

func TestMakeHandlerFunc_Closure(t *testing.T) {
	handler := MakeHandlerFunc(lookupEcho, DecodeRequest[dto.LookupRequest], ResponseWithBody)

	postRequest := func(body string, wantStatus int, wantBody string) func(t *testing.T) {
		return func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/lookup", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, wantStatus, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			var got map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

			if wantStatus == http.StatusOK {
				assert.Equal(t, wantBody, got["message"])
			} else {
				assert.Equal(t, wantBody, got["error"])
			}
		}
	}

	t.Run("ok_uppercases_code", postRequest(`{"flight":" aa1004 "}`, http.StatusOK, "AA1004"))
	t.Run("invalid_json", postRequest(`{"flight":`, http.StatusBadRequest, "Invalid JSON body."))
	t.Run("empty_body", postRequest(``, http.StatusBadRequest, "Invalid JSON body."))
	t.Run("not_found", postRequest(`{"flight":"ZZ999"}`, http.StatusNotFound, "Flight not found or no arrival data."))
	t.Run("unknown_error", postRequest(`{"flight":"BOOM1"}`, http.StatusInternalServerError, "unexpected failure"))
}

func TestMakeHandlerFunc_ValidationError(t *testing.T) {
	handler := MakeHandlerFunc(lookupEcho, DecodeRequest[dto.LookupRequest], ResponseWithBody)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/lookup", strings.NewReader(`{"flight":""}`))
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecodeQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/addresses?q=1+Market", nil)

	got, err := DecodeQuery[dto.AddressSuggestRequest](context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "1 Market", got.(*dto.AddressSuggestRequest).Query)

	short := httptest.NewRequest(http.MethodGet, "/api/v1/addresses?q=ab", nil)

	_, err = DecodeQuery[dto.AddressSuggestRequest](context.Background(), short)
	assert.Equal(t, http.StatusBadRequest, exception.StatusCodeOf(err))
}

func TestRequestID(t *testing.T) {
	var seen string

	handler := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(logger.RequestIDKey).(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	oversized := httptest.NewRequest(http.MethodGet, "/health", nil)
	oversized.Header.Set("X-Request-Id", strings.Repeat("x", 65))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, oversized)
	assert.Len(t, rec.Header().Get("X-Request-Id"), 36)
}

func TestCORSMiddleware(t *testing.T) {
	corsRequest := func(origins []string, origin string, wantAllowed bool) func(t *testing.T) {
		return func(t *testing.T) {
			handler := CORSMiddleware(origins)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/airports", nil)
			req.Header.Set("Origin", origin)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if wantAllowed {
				assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
				return
			}

			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		}
	}

	t.Run("default_origin", corsRequest(nil, "http://localhost:3000", true))
	t.Run("configured_origin", corsRequest([]string{"https://pickup.example.com"}, "https://pickup.example.com", true))
	t.Run("unknown_origin", corsRequest([]string{"https://pickup.example.com"}, "http://localhost:3000", false))
}

func TestRecoverer(t *testing.T) {
	handler := Recoverer(slog.Default())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error."}`, rec.Body.String())
}
