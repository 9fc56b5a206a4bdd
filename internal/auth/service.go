package auth

import (
	"context"
	"errors"
	"time"

	"profrate/internal/apperr"
	"profrate/internal/platform/crypto"
	"profrate/internal/user"
)

var ErrInvalidCredentials = apperr.Unauthorized("invalid username or password").WithCode("INVALID_CREDENTIALS")

type Service struct {
	secret    string
	ttl       time.Duration
	users     Users
	blacklist Blacklist
}

func NewService(secret string, ttl time.Duration, users Users, blacklist Blacklist) *Service {
	return &Service{secret: secret, ttl: ttl, users: users, blacklist: blacklist}
}

// Session is what register and login hand back to the client.
type Session struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

func (s *Service) Register(ctx context.Context, username, email, password string) (Session, error) {
	u, err := s.users.Register(ctx, user.RegisterInput{Username: username, Email: email, Password: password})
	if err != nil {
		return Session{}, err
	}
	return s.issue(u)
}

func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if !crypto.VerifyPassword(u.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials
	}
	return s.issue(u)
}

// Logout revokes the token identified by jti until its own expiry.
func (s *Service) Logout(ctx context.Context, userID, jti string, expiresAt time.Time) error {
	if jti == "" {
		return apperr.Unauthorized("token has no id")
	}
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(s.ttl)
	}
	return s.blacklist.Add(ctx, jti, userID, expiresAt)
}

func (s *Service) issue(u user.User) (Session, error) {
	tok, err := crypto.GenerateToken(s.secret, u.ID, u.Role, s.ttl)
	if err != nil {
		return Session{}, err
	}
	return Session{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Token:     tok.Value,
		ExpiresIn: int(s.ttl.Seconds()),
	}, nil
}
