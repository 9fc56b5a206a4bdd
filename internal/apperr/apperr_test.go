package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MatchesKindAndSentinel(t *testing.T) {
	errProfessorMissing := NotFound("professor not found")
	wrapped := fmt.Errorf("lookup: %w", errProfessorMissing)

	assert.True(t, errors.Is(wrapped, errProfessorMissing))
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrConflict))
	assert.Equal(t, "professor not found", wrapped.(interface{ Unwrap() error }).Unwrap().Error())
}

func TestError_WithCodeCopies(t *testing.T) {
	base := Conflict("professor does not teach this module")
	coded := base.WithCode("PROFESSOR_NOT_TEACHING")

	assert.Equal(t, "CONFLICT", base.Code)
	assert.Equal(t, "PROFESSOR_NOT_TEACHING", coded.Code)
	assert.True(t, errors.Is(coded, ErrConflict))
}

func TestConstraint_IsRetryable(t *testing.T) {
	err := Constraint("concurrent update")
	assert.True(t, err.Retryable)
	assert.True(t, errors.Is(err, ErrConstraint))
}

func TestAs(t *testing.T) {
	e, ok := As(fmt.Errorf("x: %w", Validation("bad score")))
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", e.Code)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestError_FallbackMessage(t *testing.T) {
	assert.Equal(t, "conflict", (&Error{Err: ErrConflict}).Error())
	assert.Equal(t, "unknown error", (&Error{}).Error())
}
