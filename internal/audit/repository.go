package audit

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	List(ctx context.Context, filter Filter) ([]*Entry, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, e *Entry) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.appointment_audit").
		Columns("appointment_id", "action", "actor", "detail").
		Values(e.AppointmentID, e.Action, e.Actor, e.Detail).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create audit entry query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&e.ID, &e.CreatedAt)
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Entry, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("id", "appointment_id", "action", "actor", "detail", "created_at", "count(*) OVER() as total_count").
		From("public.appointment_audit")

	if filter.AppointmentID != "" {
		query = query.Where(squirrel.Eq{"appointment_id": filter.AppointmentID})
	}
	if filter.Action != "" {
		query = query.Where(squirrel.Eq{"action": filter.Action})
	}

	query = query.OrderBy("created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list audit entries query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries failed: %w", err)
	}
	defer rows.Close()

	var result []*Entry
	var total int

	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.AppointmentID, &e.Action, &e.Actor, &e.Detail, &e.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan audit entry failed: %w", err)
		}
		result = append(result, &e)
	}

	return result, total, rows.Err()
}
