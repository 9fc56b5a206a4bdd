package rating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"profrate/internal/module"
	"profrate/internal/platform/postgres"
	"profrate/internal/professor"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	constraintRatingKey      = "ratings_user_professor_instance_key"
	constraintRatingProf     = "ratings_professor_id_fkey"
	constraintRatingInstance = "ratings_module_instance_id_fkey"
)

type PostgresRepo struct {
	pool    *pgxpool.Pool
	db      postgres.DBTX
	inTx    bool
	timeout time.Duration
	log     zerolog.Logger
}

func NewPostgresRepo(pool *pgxpool.Pool, timeout time.Duration, log zerolog.Logger) *PostgresRepo {
	return &PostgresRepo{pool: pool, db: pool, timeout: timeout, log: log}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// WithinTx runs fn in a transaction. Nested calls reuse the outer one.
func (r *PostgresRepo) WithinTx(ctx context.Context, fn func(tx Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := postgres.WithTx(timeoutCtx, r.pool, r.log, func(tx pgx.Tx) error {
		return fn(&PostgresRepo{pool: r.pool, db: tx, inTx: true, timeout: r.timeout, log: r.log})
	})
	if postgres.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %w", ErrWriteConflict, err)
	}
	return err
}

func (r *PostgresRepo) FindByKey(ctx context.Context, key Key) (Rating, error) {
	query := `
	SELECT id, user_id, professor_id, module_instance_id, score, created_at, updated_at
	FROM ratings
	WHERE user_id = $1 AND professor_id = $2 AND module_instance_id = $3
	`
	if r.inTx {
		query += " FOR UPDATE"
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var out Rating
	err := r.db.QueryRow(timeoutCtx, query, key.UserID, key.ProfessorID, key.ModuleInstanceID).Scan(
		&out.ID, &out.UserID, &out.ProfessorID, &out.ModuleInstanceID, &out.Score, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Rating{}, ErrNotFound
		}
		return Rating{}, err
	}
	return out, nil
}

func (r *PostgresRepo) Insert(ctx context.Context, rt *Rating) error {
	const query = `
	INSERT INTO ratings (user_id, professor_id, module_instance_id, score)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, rt.UserID, rt.ProfessorID, rt.ModuleInstanceID, rt.Score).
		Scan(&rt.ID, &rt.CreatedAt, &rt.UpdatedAt)
	switch {
	case err == nil:
		return nil
	case postgres.IsUniqueViolation(err, constraintRatingKey):
		return ErrDuplicate
	case postgres.IsForeignKeyViolation(err, constraintRatingProf):
		return professor.ErrNotFound
	case postgres.IsForeignKeyViolation(err, constraintRatingInstance):
		return module.ErrInstanceNotFound
	}
	return err
}

func (r *PostgresRepo) UpdateScore(ctx context.Context, id int64, score int) (Rating, error) {
	const query = `
	UPDATE ratings SET score = $2, updated_at = now()
	WHERE id = $1
	RETURNING id, user_id, professor_id, module_instance_id, score, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var out Rating
	err := r.db.QueryRow(timeoutCtx, query, id, score).Scan(
		&out.ID, &out.UserID, &out.ProfessorID, &out.ModuleInstanceID, &out.Score, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Rating{}, ErrNotFound
		}
		return Rating{}, err
	}
	return out, nil
}

func (r *PostgresRepo) StatsForProfessor(ctx context.Context, professorID int64) (Stats, error) {
	const query = `
	SELECT COALESCE(SUM(score), 0), COUNT(*)
	FROM ratings WHERE professor_id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var st Stats
	err := r.db.QueryRow(timeoutCtx, query, professorID).Scan(&st.Sum, &st.Count)
	return st, err
}

func (r *PostgresRepo) StatsByProfessor(ctx context.Context) (map[int64]Stats, error) {
	const query = `
	SELECT professor_id, SUM(score), COUNT(*)
	FROM ratings GROUP BY professor_id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]Stats)
	for rows.Next() {
		var id int64
		var st Stats
		if err := rows.Scan(&id, &st.Sum, &st.Count); err != nil {
			return nil, err
		}
		out[id] = st
	}
	return out, rows.Err()
}

func (r *PostgresRepo) StatsForProfessorInInstances(ctx context.Context, professorID int64, instanceIDs []int64) (Stats, error) {
	if len(instanceIDs) == 0 {
		return Stats{}, nil
	}
	const query = `
	SELECT COALESCE(SUM(score), 0), COUNT(*)
	FROM ratings
	WHERE professor_id = $1 AND module_instance_id = ANY($2)
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var st Stats
	err := r.db.QueryRow(timeoutCtx, query, professorID, instanceIDs).Scan(&st.Sum, &st.Count)
	return st, err
}

func (r *PostgresRepo) ListByUser(ctx context.Context, userID string) ([]Rating, error) {
	const query = `
	SELECT id, user_id, professor_id, module_instance_id, score, created_at, updated_at
	FROM ratings
	WHERE user_id = $1
	ORDER BY updated_at DESC, id DESC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Rating, error) {
		var out Rating
		err := row.Scan(&out.ID, &out.UserID, &out.ProfessorID, &out.ModuleInstanceID, &out.Score, &out.CreatedAt, &out.UpdatedAt)
		return out, err
	})
}
