package user

import (
	"time"

	"profrate/internal/apperr"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var (
	ErrNotFound      = apperr.NotFound("user not found")
	ErrAlreadyExists = apperr.Conflict("username or email already taken").WithCode("ALREADY_EXISTS")
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
