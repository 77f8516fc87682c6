package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
)

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// ErrorResponse encodes the error response to the client. it will check if it's a sentinel error or unknown error.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr  exception.ApplicationError
		message string
	)

	statusCode := http.StatusInternalServerError

	if errors.As(err, &appErr) {
		statusCode = appErr.StatusCode
		message = appErr.Message

		if statusCode >= http.StatusInternalServerError {
			slog.WarnContext(ctx, message, slog.Any("error", err))
		}
	} else {
		message = err.Error()

		slog.ErrorContext(ctx, message, slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	respWriter.WriteHeader(statusCode)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(dto.ErrorResponse{
		Error: message,
	})
}
