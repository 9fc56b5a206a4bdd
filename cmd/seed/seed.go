package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"profrate/internal/apperr"
	"profrate/internal/module"
	"profrate/internal/professor"
	"profrate/internal/rating"
	"profrate/internal/user"

	"github.com/rs/zerolog"
)

type sampleProfessor struct {
	Name, Email, Department string
}

type sampleOffering struct {
	Code       string
	Year       int
	Semester   module.Semester
	Professors []string // emails
}

var (
	sampleProfessors = []sampleProfessor{
		{"Ada Lovelace", "ada.lovelace@profrate.test", "Computing"},
		{"Alan Turing", "alan.turing@profrate.test", "Computing"},
		{"Grace Hopper", "grace.hopper@profrate.test", "Computing"},
		{"Emmy Noether", "emmy.noether@profrate.test", "Mathematics"},
		{"Kurt Godel", "kurt.godel@profrate.test", "Mathematics"},
	}

	sampleModules = []module.CreateModuleInput{
		{Code: "CD1", Title: "Computing for Dummies", Description: "Introductory computing."},
		{Code: "PG1", Title: "Programming for the Good", Description: "Structured programming."},
		{Code: "LA2", Title: "Linear Algebra", Description: "Vectors, matrices and maps."},
		{Code: "LG3", Title: "Logic and Computation", Credits: 10},
	}

	sampleOfferings = []sampleOffering{
		{"CD1", 2017, module.SemesterOne, []string{"ada.lovelace@profrate.test", "alan.turing@profrate.test"}},
		{"CD1", 2018, module.SemesterOne, []string{"ada.lovelace@profrate.test"}},
		{"PG1", 2017, module.SemesterTwo, []string{"grace.hopper@profrate.test", "alan.turing@profrate.test"}},
		{"LA2", 2018, module.SemesterTwo, []string{"emmy.noether@profrate.test"}},
		{"LG3", 2019, module.SemesterOne, []string{"kurt.godel@profrate.test", "alan.turing@profrate.test"}},
	}
)

type seeder struct {
	professors *professor.Service
	modules    *module.Service
	users      *user.Service
	ratings    *rating.Service
	log        zerolog.Logger
	rand       *rand.Rand
}

type seedOptions struct {
	AdminPassword string
	Students      int
	Ratings       int
}

type summary struct {
	Professors int
	Modules    int
	Instances  int
	Ratings    int
}

// run inserts the sample catalog. Rows that already exist are skipped, so it
// is safe to run more than once.
func (s seeder) run(ctx context.Context, opts seedOptions) (summary, error) {
	var sum summary
	if s.rand == nil {
		s.rand = rand.New(rand.NewSource(1))
	}

	if _, err := s.users.Register(ctx, user.RegisterInput{
		Username: "admin",
		Email:    "admin@profrate.test",
		Password: opts.AdminPassword,
		Role:     user.RoleAdmin,
	}); err != nil && !isConflict(err) {
		return sum, fmt.Errorf("create admin: %w", err)
	}

	existing, err := s.professors.List(ctx)
	if err != nil {
		return sum, err
	}
	byEmail := make(map[string]int64, len(existing))
	for _, p := range existing {
		byEmail[p.Email] = p.ID
	}
	for _, sp := range sampleProfessors {
		if _, ok := byEmail[sp.Email]; ok {
			continue
		}
		p, err := s.professors.Create(ctx, professor.CreateInput{Name: sp.Name, Email: sp.Email, Department: sp.Department})
		if err != nil {
			return sum, fmt.Errorf("create professor %s: %w", sp.Email, err)
		}
		byEmail[p.Email] = p.ID
		sum.Professors++
	}

	for _, m := range sampleModules {
		_, err := s.modules.CreateModule(ctx, m)
		switch {
		case err == nil:
			sum.Modules++
		case isConflict(err):
		default:
			return sum, fmt.Errorf("create module %s: %w", m.Code, err)
		}
	}

	var offered []module.Instance
	for _, o := range sampleOfferings {
		ids := make([]int64, 0, len(o.Professors))
		for _, email := range o.Professors {
			ids = append(ids, byEmail[email])
		}
		inst, err := s.modules.CreateInstance(ctx, module.CreateInstanceInput{
			ModuleCode:   o.Code,
			Year:         o.Year,
			Semester:     o.Semester,
			ProfessorIDs: ids,
		})
		switch {
		case err == nil:
			sum.Instances++
			offered = append(offered, inst)
		case isConflict(err):
		default:
			return sum, fmt.Errorf("create offering %s %d/%d: %w", o.Code, o.Year, o.Semester, err)
		}
	}

	if len(offered) == 0 || opts.Ratings <= 0 {
		return sum, nil
	}

	students := make([]string, 0, opts.Students)
	for i := 1; i <= opts.Students; i++ {
		u, err := s.users.Register(ctx, user.RegisterInput{
			Username: fmt.Sprintf("student%d", i),
			Email:    fmt.Sprintf("student%d@profrate.test", i),
			Password: opts.AdminPassword,
		})
		if err != nil {
			if isConflict(err) {
				continue
			}
			return sum, fmt.Errorf("create student: %w", err)
		}
		students = append(students, u.ID)
	}
	if len(students) == 0 {
		return sum, nil
	}

	for i := 0; i < opts.Ratings; i++ {
		inst := offered[s.rand.Intn(len(offered))]
		teacher := inst.Professors[s.rand.Intn(len(inst.Professors))]
		outcome, _, err := s.ratings.Submit(ctx, students[s.rand.Intn(len(students))], rating.SubmitInput{
			ProfessorID:      teacher.ID,
			ModuleInstanceID: inst.ID,
			Score:            rating.MinScore + s.rand.Intn(rating.MaxScore),
		})
		if err != nil {
			return sum, fmt.Errorf("submit rating: %w", err)
		}
		if outcome == rating.OutcomeCreated {
			sum.Ratings++
		}
	}
	s.log.Debug().Int("students", len(students)).Msg("sample ratings submitted")
	return sum, nil
}

func isConflict(err error) bool {
	return errors.Is(err, apperr.ErrConflict)
}
