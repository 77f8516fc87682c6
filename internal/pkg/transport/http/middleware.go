package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/logger"
)

const (
	RequestIDHeader = "X-Request-Id"

	maxRequestIDLength = 64
)

// DefaultAllowedOrigins are the local web clients served when HTTP_ALLOWED_ORIGINS is unset.
var DefaultAllowedOrigins = []string{"http://localhost:3000", "http://localhost:8444"}

var ErrInternal = exception.ApplicationError{
	Message:    "Internal server error.",
	StatusCode: http.StatusInternalServerError,
}

type MiddlewareFunc func(http.Handler) http.Handler

// Recoverer turns a panic into a 500 JSON error. http.ErrAbortHandler is re-raised so the
// connection is dropped, which also ends countdown streams.
func Recoverer(log *slog.Logger) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}

				if err, _ := rvr.(error); errors.Is(err, http.ErrAbortHandler) {
					panic(rvr)
				}

				log.ErrorContext(r.Context(), "panic occurred",
					slog.Any("message", rvr), slog.String("stack_trace", string(debug.Stack())))
				ErrorResponse(r.Context(), ErrInternal, w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware allows the web clients in origins to call the API and read the request id.
func CORSMiddleware(origins []string) MiddlewareFunc {
	if len(origins) == 0 {
		origins = DefaultAllowedOrigins
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Cache-Control", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
}

// RequestID propagates the caller's request id, or a new one, to the context and the
// response. Oversized ids are replaced.
func RequestID() MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.NewString()
			}

			ctx := context.WithValue(r.Context(), logger.RequestIDKey, requestID)
			w.Header().Set(RequestIDHeader, requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
