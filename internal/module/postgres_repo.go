package module

import (
	"context"
	"errors"
	"fmt"
	"time"

	"profrate/internal/platform/postgres"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	constraintModuleCode       = "modules_code_key"
	constraintInstanceUnique   = "module_instances_module_year_semester_key"
	constraintTeachingProf     = "module_instance_professors_professor_id_fkey"
	constraintTeachingInstance = "module_instance_professors_module_instance_id_fkey"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
	log     zerolog.Logger
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration, log zerolog.Logger) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout, log: log}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) CreateModule(ctx context.Context, m *Module) error {
	const query = `
	INSERT INTO modules (code, title, description, credits)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, m.Code, m.Title, m.Description, m.Credits).Scan(&m.ID, &m.CreatedAt)
	if postgres.IsUniqueViolation(err, constraintModuleCode) {
		return ErrDuplicateCode
	}
	return err
}

func (r *PostgresRepo) GetModuleByCode(ctx context.Context, code string) (Module, error) {
	const query = `
	SELECT id, code, title, description, credits, created_at
	FROM modules WHERE code = $1
	`
	var m Module
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, code).Scan(&m.ID, &m.Code, &m.Title, &m.Description, &m.Credits, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Module{}, ErrModuleNotFound
		}
		return Module{}, err
	}
	return m, nil
}

func (r *PostgresRepo) CreateInstance(ctx context.Context, inst *Instance, professorIDs []int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	return postgres.WithTx(timeoutCtx, r.db, r.log, func(tx pgx.Tx) error {
		const insertInstance = `
		INSERT INTO module_instances (module_id, year, semester)
		VALUES ($1, $2, $3)
		RETURNING id
		`
		err := tx.QueryRow(timeoutCtx, insertInstance, inst.ModuleID, inst.Year, int(inst.Semester)).Scan(&inst.ID)
		if err != nil {
			if postgres.IsUniqueViolation(err, constraintInstanceUnique) {
				return ErrDuplicateOffer
			}
			if postgres.IsForeignKeyViolation(err) {
				return ErrModuleNotFound
			}
			return err
		}
		for _, pid := range professorIDs {
			if err := assign(timeoutCtx, tx, inst.ID, pid); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PostgresRepo) AssignProfessor(ctx context.Context, instanceID, professorID int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return assign(timeoutCtx, r.db, instanceID, professorID)
}

func assign(ctx context.Context, db postgres.DBTX, instanceID, professorID int64) error {
	const query = `
	INSERT INTO module_instance_professors (module_instance_id, professor_id)
	VALUES ($1, $2)
	ON CONFLICT DO NOTHING
	`
	_, err := db.Exec(ctx, query, instanceID, professorID)
	switch {
	case postgres.IsForeignKeyViolation(err, constraintTeachingProf):
		return ErrProfessorMissing
	case postgres.IsForeignKeyViolation(err, constraintTeachingInstance):
		return ErrInstanceNotFound
	}
	return err
}

func (r *PostgresRepo) GetInstance(ctx context.Context, id int64) (Instance, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := instanceSelect().Where(sq.Eq{"mi.id": id}).ToSql()
	if err != nil {
		return Instance{}, fmt.Errorf("build instance query: %w", err)
	}
	var inst Instance
	if err := scanInstance(r.db.QueryRow(timeoutCtx, query, args...), &inst); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Instance{}, ErrInstanceNotFound
		}
		return Instance{}, err
	}

	teachers, err := r.teachersFor(timeoutCtx, []int64{inst.ID})
	if err != nil {
		return Instance{}, err
	}
	inst.Professors = teachers[inst.ID]
	if inst.Professors == nil {
		inst.Professors = []Teacher{}
	}
	return inst, nil
}

func (r *PostgresRepo) ListInstances(ctx context.Context, q ListQuery) ([]Instance, int, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	filters := sq.And{}
	if q.ModuleCode != "" {
		filters = append(filters, sq.Eq{"m.code": q.ModuleCode})
	}
	if q.Year != 0 {
		filters = append(filters, sq.Eq{"mi.year": q.Year})
	}
	if q.Semester != 0 {
		filters = append(filters, sq.Eq{"mi.semester": int(q.Semester)})
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").
		From("module_instances mi").
		Join("modules m ON m.id = mi.module_id").
		Where(filters).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.db.QueryRow(timeoutCtx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sel := instanceSelect().
		Where(filters).
		OrderBy("m.code", "mi.year DESC", "mi.semester")
	if q.Limit > 0 {
		sel = sel.Limit(uint64(q.Limit)).Offset(uint64(max(q.Offset, 0)))
	}
	listSQL, listArgs, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.Query(timeoutCtx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	instances, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Instance, error) {
		var inst Instance
		err := scanInstance(row, &inst)
		return inst, err
	})
	if err != nil {
		return nil, 0, err
	}

	ids := make([]int64, len(instances))
	for i := range instances {
		ids[i] = instances[i].ID
	}
	teachers, err := r.teachersFor(timeoutCtx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range instances {
		instances[i].Professors = teachers[instances[i].ID]
		if instances[i].Professors == nil {
			instances[i].Professors = []Teacher{}
		}
	}
	return instances, total, nil
}

func (r *PostgresRepo) ListInstancesTaughtBy(ctx context.Context, moduleID, professorID int64) ([]int64, error) {
	const query = `
	SELECT mi.id
	FROM module_instances mi
	JOIN module_instance_professors mip ON mip.module_instance_id = mi.id
	WHERE mi.module_id = $1 AND mip.professor_id = $2
	ORDER BY mi.id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, moduleID, professorID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

func (r *PostgresRepo) teachersFor(ctx context.Context, instanceIDs []int64) (map[int64][]Teacher, error) {
	out := make(map[int64][]Teacher, len(instanceIDs))
	if len(instanceIDs) == 0 {
		return out, nil
	}
	const query = `
	SELECT mip.module_instance_id, p.id, p.name, p.department
	FROM module_instance_professors mip
	JOIN professors p ON p.id = mip.professor_id
	WHERE mip.module_instance_id = ANY($1)
	ORDER BY p.id
	`
	rows, err := r.db.Query(ctx, query, instanceIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var instanceID int64
		var t Teacher
		if err := rows.Scan(&instanceID, &t.ID, &t.Name, &t.Department); err != nil {
			return nil, err
		}
		out[instanceID] = append(out[instanceID], t)
	}
	return out, rows.Err()
}

func instanceSelect() sq.SelectBuilder {
	return psql.Select("mi.id", "mi.module_id", "m.code", "m.title", "mi.year", "mi.semester").
		From("module_instances mi").
		Join("modules m ON m.id = mi.module_id")
}

func scanInstance(row pgx.Row, inst *Instance) error {
	var semester int
	if err := row.Scan(&inst.ID, &inst.ModuleID, &inst.ModuleCode, &inst.ModuleTitle, &inst.Year, &semester); err != nil {
		return err
	}
	inst.Semester = Semester(semester)
	return nil
}
