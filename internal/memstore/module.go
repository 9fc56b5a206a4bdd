package memstore

import (
	"context"
	"sort"

	"profrate/internal/module"
)

// ModuleRepo implements module.Repository.
type ModuleRepo struct {
	s *Store
}

var _ module.Repository = (*ModuleRepo)(nil)

func (r *ModuleRepo) CreateModule(_ context.Context, m *module.Module) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.moduleCodes[m.Code]; taken {
		return module.ErrDuplicateCode
	}
	r.s.nextModule++
	m.ID = r.s.nextModule
	m.CreatedAt = r.s.now()
	r.s.modules[m.ID] = *m
	r.s.moduleCodes[m.Code] = m.ID
	return nil
}

func (r *ModuleRepo) GetModuleByCode(_ context.Context, code string) (module.Module, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.moduleCodes[code]
	if !ok {
		return module.Module{}, module.ErrModuleNotFound
	}
	return r.s.modules[id], nil
}

// CreateInstance validates everything before writing, so a failure leaves no
// partial instance behind.
func (r *ModuleRepo) CreateInstance(_ context.Context, inst *module.Instance, professorIDs []int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.modules[inst.ModuleID]; !ok {
		return module.ErrModuleNotFound
	}
	key := offerKey{moduleID: inst.ModuleID, year: inst.Year, semester: inst.Semester}
	if _, taken := r.s.offers[key]; taken {
		return module.ErrDuplicateOffer
	}
	for _, pid := range professorIDs {
		if _, ok := r.s.professors[pid]; !ok {
			return module.ErrProfessorMissing
		}
	}

	r.s.nextInstance++
	inst.ID = r.s.nextInstance
	r.s.instances[inst.ID] = instanceRow{id: inst.ID, moduleID: inst.ModuleID, year: inst.Year, semester: inst.Semester}
	r.s.offers[key] = inst.ID
	teachers := make(map[int64]struct{}, len(professorIDs))
	for _, pid := range professorIDs {
		teachers[pid] = struct{}{}
	}
	r.s.teaching[inst.ID] = teachers
	return nil
}

func (r *ModuleRepo) AssignProfessor(_ context.Context, instanceID, professorID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.instances[instanceID]; !ok {
		return module.ErrInstanceNotFound
	}
	if _, ok := r.s.professors[professorID]; !ok {
		return module.ErrProfessorMissing
	}
	r.s.teaching[instanceID][professorID] = struct{}{}
	return nil
}

func (r *ModuleRepo) GetInstance(_ context.Context, id int64) (module.Instance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.instances[id]
	if !ok {
		return module.Instance{}, module.ErrInstanceNotFound
	}
	return r.s.instance(row), nil
}

func (r *ModuleRepo) ListInstances(_ context.Context, q module.ListQuery) ([]module.Instance, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	matched := make([]module.Instance, 0)
	for _, row := range r.s.instances {
		m := r.s.modules[row.moduleID]
		if q.ModuleCode != "" && m.Code != q.ModuleCode {
			continue
		}
		if q.Year != 0 && row.year != q.Year {
			continue
		}
		if q.Semester != 0 && row.semester != q.Semester {
			continue
		}
		matched = append(matched, r.s.instance(row))
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.ModuleCode != b.ModuleCode {
			return a.ModuleCode < b.ModuleCode
		}
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Semester < b.Semester
	})

	total := len(matched)
	if q.Limit <= 0 {
		return matched, total, nil
	}
	start := min(max(q.Offset, 0), total)
	end := start + min(q.Limit, total-start)
	return matched[start:end], total, nil
}

func (r *ModuleRepo) ListInstancesTaughtBy(_ context.Context, moduleID, professorID int64) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var ids []int64
	for id, row := range r.s.instances {
		if row.moduleID != moduleID {
			continue
		}
		if _, ok := r.s.teaching[id][professorID]; ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// instance must be called with s.mu held.
func (s *Store) instance(row instanceRow) module.Instance {
	m := s.modules[row.moduleID]
	inst := module.Instance{
		ID:          row.id,
		ModuleID:    row.moduleID,
		ModuleCode:  m.Code,
		ModuleTitle: m.Title,
		Year:        row.year,
		Semester:    row.semester,
		Professors:  []module.Teacher{},
	}
	for pid := range s.teaching[row.id] {
		p := s.professors[pid]
		inst.Professors = append(inst.Professors, module.Teacher{ID: p.ID, Name: p.Name, Department: p.Department})
	}
	sort.Slice(inst.Professors, func(i, j int) bool { return inst.Professors[i].ID < inst.Professors[j].ID })
	return inst
}
