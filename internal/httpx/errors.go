package httpx

import (
	"errors"
	"net/http"

	"profrate/internal/apperr"

	"github.com/rs/zerolog"
)

// StatusFor maps an error to the HTTP status and error code used in the envelope.
func StatusFor(err error) (int, string) {
	var code string
	if e, ok := apperr.As(err); ok {
		code = e.Code
	}
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest, codeOr(code, "VALIDATION_ERROR")
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, codeOr(code, "NOT_FOUND")
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict, codeOr(code, "CONFLICT")
	case errors.Is(err, apperr.ErrConstraint):
		return http.StatusConflict, codeOr(code, "CONSTRAINT_VIOLATION")
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized, codeOr(code, "UNAUTHORIZED")
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden, codeOr(code, "FORBIDDEN")
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}

func codeOr(code, fallback string) string {
	if code != "" {
		return code
	}
	return fallback
}

// WriteError renders err in the error envelope. Unclassified errors are logged
// and reported as a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, log zerolog.Logger, err error) {
	status, code := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).
			Str("request_id", RequestIDFrom(r)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		JSONError(w, r, status, code, "Internal server error", nil)
		return
	}

	msg := err.Error()
	var details []ErrorDetail
	if e, ok := apperr.As(err); ok {
		msg = e.Message
		if e.Retryable {
			details = []ErrorDetail{{Field: "retryable", Message: "true"}}
		}
	}
	JSONError(w, r, status, code, msg, details)
}
