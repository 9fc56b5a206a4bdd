package rating

import (
	"context"

	"profrate/internal/module"
	"profrate/internal/professor"
)

// Repository is the rating store. Implementations must enforce uniqueness of
// Key and report a lost insert race as ErrDuplicate.
type Repository interface {
	// WithinTx runs fn against a repository bound to one transaction. The
	// transaction is committed when fn returns nil and rolled back otherwise.
	WithinTx(ctx context.Context, fn func(tx Repository) error) error

	// FindByKey returns ErrNotFound when no rating exists. Inside WithinTx the
	// row stays locked until the transaction ends.
	FindByKey(ctx context.Context, key Key) (Rating, error)
	Insert(ctx context.Context, r *Rating) error
	UpdateScore(ctx context.Context, id int64, score int) (Rating, error)

	StatsForProfessor(ctx context.Context, professorID int64) (Stats, error)
	StatsByProfessor(ctx context.Context) (map[int64]Stats, error)
	StatsForProfessorInInstances(ctx context.Context, professorID int64, instanceIDs []int64) (Stats, error)
	ListByUser(ctx context.Context, userID string) ([]Rating, error)
}

// ProfessorDirectory resolves professors.
type ProfessorDirectory interface {
	GetByID(ctx context.Context, id int64) (professor.Professor, error)
	List(ctx context.Context) ([]professor.Professor, error)
}

// Catalog resolves modules and their offerings.
type Catalog interface {
	GetInstance(ctx context.Context, id int64) (module.Instance, error)
	GetModuleByCode(ctx context.Context, code string) (module.Module, error)
	InstancesTaughtBy(ctx context.Context, moduleID, professorID int64) ([]int64, error)
}
