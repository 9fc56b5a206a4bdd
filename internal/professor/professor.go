package professor

import (
	"time"

	"profrate/internal/apperr"
)

var (
	ErrNotFound       = apperr.NotFound("professor not found")
	ErrDuplicateEmail = apperr.Conflict("a professor with this email already exists").WithCode("PROFESSOR_EXISTS")
)

type Professor struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}
