package auth

import (
	"context"
	"time"

	"profrate/internal/user"
)

// Users is the part of the user service that auth depends on.
type Users interface {
	Register(ctx context.Context, in user.RegisterInput) (user.User, error)
	GetByUsername(ctx context.Context, username string) (user.User, error)
}

// Blacklist stores revoked token ids until they expire.
type Blacklist interface {
	Add(ctx context.Context, jti, userID string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}
