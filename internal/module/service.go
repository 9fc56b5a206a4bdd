package module

import (
	"context"
	"strings"

	"profrate/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateModuleInput struct {
	Code        string
	Title       string
	Description string
	Credits     int
}

func (s *Service) CreateModule(ctx context.Context, in CreateModuleInput) (Module, error) {
	m := Module{
		Code:        NormalizeCode(in.Code),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Credits:     in.Credits,
	}
	if m.Code == "" || len(m.Code) > MaxCodeLength {
		return Module{}, apperr.Validation("code must be 1-10 characters")
	}
	if m.Title == "" || len(m.Title) > 200 {
		return Module{}, apperr.Validation("title must be 1-200 characters")
	}
	if m.Credits == 0 {
		m.Credits = DefaultCredit
	}
	if m.Credits < 0 {
		return Module{}, apperr.Validation("credits must be positive")
	}

	if err := s.repo.CreateModule(ctx, &m); err != nil {
		return Module{}, err
	}
	return m, nil
}

func (s *Service) GetModuleByCode(ctx context.Context, code string) (Module, error) {
	code = NormalizeCode(code)
	if code == "" {
		return Module{}, ErrModuleNotFound
	}
	return s.repo.GetModuleByCode(ctx, code)
}

type CreateInstanceInput struct {
	ModuleCode   string
	Year         int
	Semester     Semester
	ProfessorIDs []int64
}

// CreateInstance offers a module in a year and semester, taught by the given
// professors. A second offering of the same (module, year, semester) fails
// with ErrDuplicateOffer.
func (s *Service) CreateInstance(ctx context.Context, in CreateInstanceInput) (Instance, error) {
	if in.Year < MinYear || in.Year > MaxYear {
		return Instance{}, apperr.Validation("year must be between 2000 and 2100")
	}
	if !in.Semester.Valid() {
		return Instance{}, apperr.Validation("semester must be 1 or 2")
	}

	m, err := s.GetModuleByCode(ctx, in.ModuleCode)
	if err != nil {
		return Instance{}, err
	}

	inst := Instance{
		ModuleID:    m.ID,
		ModuleCode:  m.Code,
		ModuleTitle: m.Title,
		Year:        in.Year,
		Semester:    in.Semester,
	}
	if err := s.repo.CreateInstance(ctx, &inst, dedupe(in.ProfessorIDs)); err != nil {
		return Instance{}, err
	}
	return s.repo.GetInstance(ctx, inst.ID)
}

func (s *Service) AssignProfessor(ctx context.Context, instanceID, professorID int64) (Instance, error) {
	if err := s.repo.AssignProfessor(ctx, instanceID, professorID); err != nil {
		return Instance{}, err
	}
	return s.repo.GetInstance(ctx, instanceID)
}

func (s *Service) GetInstance(ctx context.Context, id int64) (Instance, error) {
	if id <= 0 {
		return Instance{}, ErrInstanceNotFound
	}
	return s.repo.GetInstance(ctx, id)
}

func (s *Service) ListInstances(ctx context.Context, q ListQuery) ([]Instance, int, error) {
	q.ModuleCode = NormalizeCode(q.ModuleCode)
	if q.Semester != 0 && !q.Semester.Valid() {
		return nil, 0, apperr.Validation("semester must be 1 or 2")
	}
	if q.Limit < 0 || q.Offset < 0 {
		return nil, 0, apperr.Validation("limit and offset must not be negative")
	}
	return s.repo.ListInstances(ctx, q)
}

// InstancesTaughtBy returns the ids of the instances of moduleID that
// professorID teaches.
func (s *Service) InstancesTaughtBy(ctx context.Context, moduleID, professorID int64) ([]int64, error) {
	return s.repo.ListInstancesTaughtBy(ctx, moduleID, professorID)
}

// NormalizeCode trims and upper-cases a module code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
