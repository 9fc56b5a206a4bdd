package professor

import (
	"context"
	"net/mail"
	"strings"

	"profrate/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name       string
	Email      string
	Department string
}

// Create registers a professor. Email addresses are compared case-insensitively.
func (s *Service) Create(ctx context.Context, in CreateInput) (Professor, error) {
	p := Professor{
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Department: strings.TrimSpace(in.Department),
	}
	if p.Name == "" || len(p.Name) > 100 {
		return Professor{}, apperr.Validation("name must be 1-100 characters")
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return Professor{}, apperr.Validation("email is not a valid address")
	}
	if p.Department == "" || len(p.Department) > 100 {
		return Professor{}, apperr.Validation("department must be 1-100 characters")
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		return Professor{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Professor, error) {
	if id <= 0 {
		return Professor{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List returns every professor ordered by id.
func (s *Service) List(ctx context.Context) ([]Professor, error) {
	return s.repo.List(ctx)
}
