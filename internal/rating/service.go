package rating

import (
	"context"
	"errors"

	"profrate/internal/apperr"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// submitAttempts bounds how often Submit re-runs its transaction after losing
// an insert race or a serialization conflict.
const submitAttempts = 2

type Service struct {
	repo       Repository
	professors ProfessorDirectory
	catalog    Catalog
	log        zerolog.Logger

	submissions *prometheus.CounterVec
}

type Option func(*Service)

// WithMetrics counts submissions by outcome on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Service) {
		s.submissions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "profrate",
			Name:      "rating_submissions_total",
			Help:      "Rating submissions by outcome.",
		}, []string{"outcome"})
		reg.MustRegister(s.submissions)
	}
}

func NewService(repo Repository, professors ProfessorDirectory, catalog Catalog, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		professors: professors,
		catalog:    catalog,
		log:        log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type SubmitInput struct {
	ProfessorID      int64
	ModuleInstanceID int64
	Score            int
}

// Submit creates the caller's rating for a professor in a module instance, or
// overwrites the score when the caller already rated that pair. userID is the
// authenticated caller and is never taken from the request body.
func (s *Service) Submit(ctx context.Context, userID string, in SubmitInput) (Outcome, Rating, error) {
	outcome, r, err := s.submit(ctx, userID, in)
	s.count(outcome, err)
	return outcome, r, err
}

func (s *Service) submit(ctx context.Context, userID string, in SubmitInput) (Outcome, Rating, error) {
	if userID == "" {
		return "", Rating{}, apperr.Unauthorized("authentication required")
	}
	if in.Score < MinScore || in.Score > MaxScore {
		return "", Rating{}, ErrInvalidScore
	}

	prof, err := s.professors.GetByID(ctx, in.ProfessorID)
	if err != nil {
		return "", Rating{}, err
	}
	inst, err := s.catalog.GetInstance(ctx, in.ModuleInstanceID)
	if err != nil {
		return "", Rating{}, err
	}
	if !inst.TaughtBy(prof.ID) {
		return "", Rating{}, ErrNotAssigned
	}

	key := Key{UserID: userID, ProfessorID: prof.ID, ModuleInstanceID: inst.ID}
	for attempt := 1; attempt <= submitAttempts; attempt++ {
		outcome, r, err := s.upsert(ctx, key, in.Score)
		if !errors.Is(err, ErrDuplicate) && !errors.Is(err, ErrWriteConflict) {
			return outcome, r, err
		}
		s.log.Warn().
			Str("user_id", key.UserID).
			Int64("professor_id", key.ProfessorID).
			Int64("module_instance_id", key.ModuleInstanceID).
			Int("attempt", attempt).
			Msg("rating write lost a race, retrying")
	}
	return "", Rating{}, ErrConcurrentWrite
}

func (s *Service) upsert(ctx context.Context, key Key, score int) (Outcome, Rating, error) {
	var (
		outcome Outcome
		saved   Rating
	)
	err := s.repo.WithinTx(ctx, func(tx Repository) error {
		existing, err := tx.FindByKey(ctx, key)
		switch {
		case err == nil:
			saved, err = tx.UpdateScore(ctx, existing.ID, score)
			if err != nil {
				return err
			}
			outcome = OutcomeUpdated
			return nil
		case errors.Is(err, ErrNotFound):
			saved = Rating{
				UserID:           key.UserID,
				ProfessorID:      key.ProfessorID,
				ModuleInstanceID: key.ModuleInstanceID,
				Score:            score,
			}
			if err := tx.Insert(ctx, &saved); err != nil {
				return err
			}
			outcome = OutcomeCreated
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return "", Rating{}, err
	}
	return outcome, saved, nil
}

func (s *Service) count(outcome Outcome, err error) {
	if s.submissions == nil {
		return
	}
	label := string(outcome)
	switch {
	case err == nil:
	case errors.Is(err, apperr.ErrConstraint):
		label = "conflict"
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrUnauthorized):
		label = "rejected"
	default:
		label = "error"
	}
	s.submissions.WithLabelValues(label).Inc()
}

// AverageForProfessor is the professor's rounded average across every module
// instance. A professor nobody rated averages 0.
func (s *Service) AverageForProfessor(ctx context.Context, professorID int64) (ProfessorAverage, error) {
	prof, err := s.professors.GetByID(ctx, professorID)
	if err != nil {
		return ProfessorAverage{}, err
	}
	stats, err := s.repo.StatsForProfessor(ctx, prof.ID)
	if err != nil {
		return ProfessorAverage{}, err
	}
	return ProfessorAverage{
		ProfessorID:   prof.ID,
		ProfessorName: prof.Name,
		Department:    prof.Department,
		AverageRating: stats.Average(),
		TotalRatings:  stats.Count,
	}, nil
}

// Overview lists every professor with their rounded average.
func (s *Service) Overview(ctx context.Context) ([]ProfessorAverage, error) {
	profs, err := s.professors.List(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.repo.StatsByProfessor(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProfessorAverage, 0, len(profs))
	for _, p := range profs {
		st := stats[p.ID]
		out = append(out, ProfessorAverage{
			ProfessorID:   p.ID,
			ProfessorName: p.Name,
			Department:    p.Department,
			AverageRating: st.Average(),
			TotalRatings:  st.Count,
		})
	}
	return out, nil
}

// AverageForProfessorInModule averages a professor's ratings over every
// instance of the module they teach. It fails with ErrNotTeachingModule when
// they teach none, and reports HasRatings=false when they teach it but nobody
// has rated them yet.
func (s *Service) AverageForProfessorInModule(ctx context.Context, professorID int64, moduleCode string) (ModuleAverage, error) {
	prof, err := s.professors.GetByID(ctx, professorID)
	if err != nil {
		return ModuleAverage{}, err
	}
	mod, err := s.catalog.GetModuleByCode(ctx, moduleCode)
	if err != nil {
		return ModuleAverage{}, err
	}

	instanceIDs, err := s.catalog.InstancesTaughtBy(ctx, mod.ID, prof.ID)
	if err != nil {
		return ModuleAverage{}, err
	}
	if len(instanceIDs) == 0 {
		return ModuleAverage{}, ErrNotTeachingModule
	}

	stats, err := s.repo.StatsForProfessorInInstances(ctx, prof.ID, instanceIDs)
	if err != nil {
		return ModuleAverage{}, err
	}

	avg := ModuleAverage{
		ProfessorID:   prof.ID,
		ProfessorName: prof.Name,
		ModuleCode:    mod.Code,
		ModuleTitle:   mod.Title,
		AverageRating: stats.Average(),
		TotalRatings:  stats.Count,
		HasRatings:    stats.Count > 0,
	}
	if !avg.HasRatings {
		avg.Message = NoRatingsMessage
	}
	return avg, nil
}

// ListForUser returns the caller's ratings, most recently changed first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Entry, error) {
	if userID == "" {
		return nil, apperr.Unauthorized("authentication required")
	}
	ratings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string)
	labels := make(map[int64]string)
	out := make([]Entry, 0, len(ratings))
	for _, r := range ratings {
		name, ok := names[r.ProfessorID]
		if !ok {
			p, err := s.professors.GetByID(ctx, r.ProfessorID)
			if err != nil {
				return nil, err
			}
			name = p.Name
			names[r.ProfessorID] = name
		}
		label, ok := labels[r.ModuleInstanceID]
		if !ok {
			inst, err := s.catalog.GetInstance(ctx, r.ModuleInstanceID)
			if err != nil {
				return nil, err
			}
			label = inst.Label()
			labels[r.ModuleInstanceID] = label
		}
		out = append(out, Entry{Rating: r, ProfessorName: name, InstanceLabel: label})
	}
	return out, nil
}
