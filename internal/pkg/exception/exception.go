package exception

import (
	"errors"
	"fmt"
	"net/http"
)

// ApplicationError handles application level errors.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Cause == targetErr.Cause &&
		e.Message == targetErr.Message
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// ConfigurationError reports a missing credential or setting. Calls depending on it
// fail immediately and are never retried.
func ConfigurationError(message string) ApplicationError {
	return ApplicationError{
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// ValidationError reports malformed caller input, rejected before any network call.
func ValidationError(message string) ApplicationError {
	return ApplicationError{
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// UpstreamError reports a failed collaborator call or a non-success payload.
func UpstreamError(message string, cause error) ApplicationError {
	return ApplicationError{
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Cause:      cause,
	}
}

// NotFoundError reports a successful collaborator call without a matching record.
func NotFoundError(message string) ApplicationError {
	return ApplicationError{
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// StatusCodeOf returns the status code carried by err, or 500 when err is not an
// ApplicationError.
func StatusCodeOf(err error) int {
	var appErr ApplicationError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}

	return http.StatusInternalServerError
}
