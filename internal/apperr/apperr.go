// Package apperr defines the error taxonomy shared by every domain package.
//
// Domain packages declare their sentinels as *Error values wrapping one of the
// kind sentinels below, so callers can match either the specific error
// (errors.Is(err, professor.ErrNotFound)) or its kind
// (errors.Is(err, apperr.ErrNotFound)).
package apperr

import "errors"

// Kind sentinels.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("conflict")
	ErrConstraint   = errors.New("constraint violation")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Error carries a kind sentinel, a stable machine code and a message safe to
// show to the caller.
type Error struct {
	Err       error
	Code      string
	Message   string
	Retryable bool
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithCode returns a copy of e with a different code.
func (e *Error) WithCode(code string) *Error {
	c := *e
	c.Code = code
	return &c
}

func Validation(msg string) *Error {
	return &Error{Err: ErrValidation, Code: "VALIDATION_ERROR", Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Err: ErrNotFound, Code: "NOT_FOUND", Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Err: ErrConflict, Code: "CONFLICT", Message: msg}
}

// Constraint reports a storage-level constraint race. It is always retryable.
func Constraint(msg string) *Error {
	return &Error{Err: ErrConstraint, Code: "CONSTRAINT_VIOLATION", Message: msg, Retryable: true}
}

func Unauthorized(msg string) *Error {
	return &Error{Err: ErrUnauthorized, Code: "UNAUTHORIZED", Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Err: ErrForbidden, Code: "FORBIDDEN", Message: msg}
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
