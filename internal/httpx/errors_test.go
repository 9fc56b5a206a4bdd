package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"profrate/internal/apperr"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", apperr.Validation("bad"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", apperr.NotFound("gone"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict with code", apperr.Conflict("no").WithCode("PROFESSOR_NOT_TEACHING"), http.StatusConflict, "PROFESSOR_NOT_TEACHING"},
		{"constraint", apperr.Constraint("dup"), http.StatusConflict, "CONSTRAINT_VIOLATION"},
		{"unauthorized", apperr.Unauthorized("who"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", apperr.Forbidden("nope"), http.StatusForbidden, "FORBIDDEN"},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := StatusFor(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestWriteError_HidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/x", nil)

	WriteError(w, r, zerolog.Nop(), errors.New("pq: connection refused"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Internal server error", body.Error.Message)
}

func TestWriteError_RetryableConstraint(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/ratings", nil)

	WriteError(w, r, zerolog.Nop(), apperr.Constraint("rating was modified concurrently"))

	require.Equal(t, http.StatusConflict, w.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "CONSTRAINT_VIOLATION", body.Error.Code)
	require.Len(t, body.Error.Details, 1)
	assert.Equal(t, "retryable", body.Error.Details[0].Field)
}
