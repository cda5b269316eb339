package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarrySentinels(t *testing.T) {
	assert.True(t, errors.Is(NotFound("user", "7"), ErrNotFound))
	assert.True(t, errors.Is(Conflict("dup"), ErrConflict))
	assert.True(t, errors.Is(InvalidInput("bad"), ErrInvalidInput))
	assert.True(t, errors.Is(Unauthorized("no"), ErrUnauthorized))
	assert.True(t, errors.Is(Forbidden("no"), ErrForbidden))
	assert.True(t, errors.Is(Unavailable("catalog", errors.New("timeout")), ErrUnavailable))
}

func TestUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable("catalog", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusBadGateway, err.Status)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", err.Code)
	assert.Contains(t, err.Message, "catalog")
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("user", "7"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{InvalidInput("bad"), http.StatusBadRequest},
		{Unauthorized("no"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{Unavailable("catalog", errors.New("x")), http.StatusBadGateway},
		{fmt.Errorf("wrapped: %w", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", ErrUnavailable), http.StatusBadGateway},
		{errors.New("mystery"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "error: %v", tc.err)
	}
}
