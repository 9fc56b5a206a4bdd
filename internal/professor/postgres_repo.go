package professor

import (
	"context"
	"errors"
	"time"

	"profrate/internal/platform/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Create(ctx context.Context, p *Professor) error {
	const query = `
	INSERT INTO professors (name, email, department)
	VALUES ($1, $2, $3)
	RETURNING id, created_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, p.Name, p.Email, p.Department).Scan(&p.ID, &p.CreatedAt)
	if postgres.IsUniqueViolation(err, "professors_email_key") {
		return ErrDuplicateEmail
	}
	return err
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Professor, error) {
	const query = `
	SELECT id, name, email, department, created_at
	FROM professors WHERE id = $1
	`
	var p Professor
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(&p.ID, &p.Name, &p.Email, &p.Department, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Professor{}, ErrNotFound
		}
		return Professor{}, err
	}
	return p, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Professor, error) {
	const query = `
	SELECT id, name, email, department, created_at
	FROM professors ORDER BY id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Professor, error) {
		var p Professor
		err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Department, &p.CreatedAt)
		return p, err
	})
}
