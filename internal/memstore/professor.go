package memstore

import (
	"context"
	"sort"
	"strings"

	"profrate/internal/professor"
)

// ProfessorRepo implements professor.Repository.
type ProfessorRepo struct {
	s *Store
}

var _ professor.Repository = (*ProfessorRepo)(nil)

func (r *ProfessorRepo) Create(_ context.Context, p *professor.Professor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	mail := strings.ToLower(p.Email)
	if _, taken := r.s.professorMail[mail]; taken {
		return professor.ErrDuplicateEmail
	}
	r.s.nextProfessor++
	p.ID = r.s.nextProfessor
	p.CreatedAt = r.s.now()
	r.s.professors[p.ID] = *p
	r.s.professorMail[mail] = p.ID
	return nil
}

func (r *ProfessorRepo) GetByID(_ context.Context, id int64) (professor.Professor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.professors[id]
	if !ok {
		return professor.Professor{}, professor.ErrNotFound
	}
	return p, nil
}

func (r *ProfessorRepo) List(_ context.Context) ([]professor.Professor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]professor.Professor, 0, len(r.s.professors))
	for _, p := range r.s.professors {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
