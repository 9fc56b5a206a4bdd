package user

import (
	"context"
	"strings"

	"profrate/internal/platform/crypto"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Register hashes the password and stores a new account. Role defaults to USER.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	hash, err := crypto.HashPassword(in.Password)
	if err != nil {
		return User{}, err
	}

	u := &User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Role:         in.Role,
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return *u, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	return s.repo.GetByUsername(ctx, strings.TrimSpace(username))
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}
