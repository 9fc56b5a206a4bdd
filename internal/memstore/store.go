// Package memstore is a mutex-guarded in-memory implementation of every
// repository port. It enforces the same uniqueness rules as the Postgres
// schema and is selected with database.driver=memory.
package memstore

import (
	"sync"
	"time"

	"profrate/internal/module"
	"profrate/internal/professor"
	"profrate/internal/rating"
	"profrate/internal/user"
)

type instanceRow struct {
	id       int64
	moduleID int64
	year     int
	semester module.Semester
}

type offerKey struct {
	moduleID int64
	year     int
	semester module.Semester
}

type revoked struct {
	userID    string
	expiresAt time.Time
}

// Store holds all tables behind a single mutex. Use the typed views to get
// repository implementations.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	professors    map[int64]professor.Professor
	professorMail map[string]int64
	nextProfessor int64

	modules     map[int64]module.Module
	moduleCodes map[string]int64
	nextModule  int64

	instances    map[int64]instanceRow
	offers       map[offerKey]int64
	teaching     map[int64]map[int64]struct{}
	nextInstance int64

	ratings    map[int64]rating.Rating
	ratingKeys map[rating.Key]int64
	nextRating int64

	users     map[string]user.User
	usernames map[string]string
	userMail  map[string]string

	blacklist map[string]revoked
}

type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		now:           func() time.Time { return time.Now().UTC() },
		professors:    make(map[int64]professor.Professor),
		professorMail: make(map[string]int64),
		modules:       make(map[int64]module.Module),
		moduleCodes:   make(map[string]int64),
		instances:     make(map[int64]instanceRow),
		offers:        make(map[offerKey]int64),
		teaching:      make(map[int64]map[int64]struct{}),
		ratings:       make(map[int64]rating.Rating),
		ratingKeys:    make(map[rating.Key]int64),
		users:         make(map[string]user.User),
		usernames:     make(map[string]string),
		userMail:      make(map[string]string),
		blacklist:     make(map[string]revoked),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Professors() *ProfessorRepo { return &ProfessorRepo{s: s} }
func (s *Store) Modules() *ModuleRepo       { return &ModuleRepo{s: s} }
func (s *Store) Ratings() *RatingRepo       { return &RatingRepo{s: s} }
func (s *Store) Users() *UserRepo           { return &UserRepo{s: s} }
func (s *Store) Blacklist() *BlacklistRepo  { return &BlacklistRepo{s: s} }
