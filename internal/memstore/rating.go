package memstore

import (
	"context"
	"maps"
	"sort"

	"profrate/internal/module"
	"profrate/internal/professor"
	"profrate/internal/rating"
)

// RatingRepo implements rating.Repository. WithinTx holds the store lock for
// the whole callback, so transactions are fully serialized.
type RatingRepo struct {
	s    *Store
	inTx bool
}

var _ rating.Repository = (*RatingRepo)(nil)

func (r *RatingRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

// WithinTx snapshots the ratings table and restores it when fn fails.
func (r *RatingRepo) WithinTx(ctx context.Context, fn func(tx rating.Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ratings := maps.Clone(r.s.ratings)
	keys := maps.Clone(r.s.ratingKeys)
	next := r.s.nextRating

	if err := fn(&RatingRepo{s: r.s, inTx: true}); err != nil {
		r.s.ratings = ratings
		r.s.ratingKeys = keys
		r.s.nextRating = next
		return err
	}
	return nil
}

func (r *RatingRepo) FindByKey(_ context.Context, key rating.Key) (rating.Rating, error) {
	defer r.lock()()

	id, ok := r.s.ratingKeys[key]
	if !ok {
		return rating.Rating{}, rating.ErrNotFound
	}
	return r.s.ratings[id], nil
}

func (r *RatingRepo) Insert(_ context.Context, rt *rating.Rating) error {
	defer r.lock()()

	key := rt.Key()
	if _, taken := r.s.ratingKeys[key]; taken {
		return rating.ErrDuplicate
	}
	if _, ok := r.s.professors[rt.ProfessorID]; !ok {
		return professor.ErrNotFound
	}
	if _, ok := r.s.instances[rt.ModuleInstanceID]; !ok {
		return module.ErrInstanceNotFound
	}

	r.s.nextRating++
	now := r.s.now()
	rt.ID = r.s.nextRating
	rt.CreatedAt = now
	rt.UpdatedAt = now
	r.s.ratings[rt.ID] = *rt
	r.s.ratingKeys[key] = rt.ID
	return nil
}

func (r *RatingRepo) UpdateScore(_ context.Context, id int64, score int) (rating.Rating, error) {
	defer r.lock()()

	rt, ok := r.s.ratings[id]
	if !ok {
		return rating.Rating{}, rating.ErrNotFound
	}
	rt.Score = score
	rt.UpdatedAt = r.s.now()
	r.s.ratings[id] = rt
	return rt, nil
}

func (r *RatingRepo) StatsForProfessor(_ context.Context, professorID int64) (rating.Stats, error) {
	defer r.lock()()

	var st rating.Stats
	for _, rt := range r.s.ratings {
		if rt.ProfessorID == professorID {
			st.Sum += int64(rt.Score)
			st.Count++
		}
	}
	return st, nil
}

func (r *RatingRepo) StatsByProfessor(_ context.Context) (map[int64]rating.Stats, error) {
	defer r.lock()()

	out := make(map[int64]rating.Stats)
	for _, rt := range r.s.ratings {
		st := out[rt.ProfessorID]
		st.Sum += int64(rt.Score)
		st.Count++
		out[rt.ProfessorID] = st
	}
	return out, nil
}

func (r *RatingRepo) StatsForProfessorInInstances(_ context.Context, professorID int64, instanceIDs []int64) (rating.Stats, error) {
	defer r.lock()()

	wanted := make(map[int64]struct{}, len(instanceIDs))
	for _, id := range instanceIDs {
		wanted[id] = struct{}{}
	}
	var st rating.Stats
	for _, rt := range r.s.ratings {
		if rt.ProfessorID != professorID {
			continue
		}
		if _, ok := wanted[rt.ModuleInstanceID]; ok {
			st.Sum += int64(rt.Score)
			st.Count++
		}
	}
	return st, nil
}

func (r *RatingRepo) ListByUser(_ context.Context, userID string) ([]rating.Rating, error) {
	defer r.lock()()

	out := make([]rating.Rating, 0)
	for _, rt := range r.s.ratings {
		if rt.UserID == userID {
			out = append(out, rt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
