//go:build unit

package exception

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationError_Taxonomy(t *testing.T) {
	statusRequest := func(err error, want int) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, StatusCodeOf(err))
		}
	}

	t.Run("configuration", statusRequest(ConfigurationError("missing key"), http.StatusInternalServerError))
	t.Run("validation", statusRequest(ValidationError("bad airport"), http.StatusBadRequest))
	t.Run("upstream", statusRequest(UpstreamError("provider down", errors.New("eof")), http.StatusBadGateway))
	t.Run("not_found", statusRequest(NotFoundError("no flight"), http.StatusNotFound))
	t.Run("wrapped", statusRequest(fmt.Errorf("service: %w", NotFoundError("no flight")), http.StatusNotFound))
	t.Run("plain_error", statusRequest(errors.New("boom"), http.StatusInternalServerError))
}

func TestApplicationError_Is(t *testing.T) {
	sentinel := NotFoundError("flight not found")

	wrapped := fmt.Errorf("lookup: %w", sentinel)
	assert.ErrorIs(t, wrapped, sentinel)
	assert.NotErrorIs(t, wrapped, NotFoundError("other"))
}

func TestApplicationError_Error(t *testing.T) {
	err := UpstreamError("flight provider failed", errors.New("timeout"))
	assert.Equal(t, "flight provider failed: timeout", err.Error())
	assert.Equal(t, "missing key", ConfigurationError("missing key").Error())
}
