package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists appointment records.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	List(ctx context.Context, filter Filter) ([]*Appointment, int, error)
	ListByDate(ctx context.Context, date string) ([]*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id string) error

	// CountByDay returns the number of non-cancelled appointments per date
	// in the inclusive [from, to] range.
	CountByDay(ctx context.Context, from, to string) (map[string]int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var apptColumns = []string{
	"id", "customer_name", "contact_phone", "contact_email", "vehicle_reference",
	"day", "slot_time", "status", "origin", "appointment_type", "notes",
	"created_at", "created_by", "updated_at", "updated_by",
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var (
		a   Appointment
		day time.Time
	)
	if err := row.Scan(
		&a.ID, &a.CustomerName, &a.ContactPhone, &a.ContactEmail, &a.VehicleReference,
		&day, &a.Time, &a.Status, &a.Origin, &a.AppointmentType, &a.Notes,
		&a.CreatedAt, &a.CreatedBy, &a.UpdatedAt, &a.UpdatedBy,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan appointment failed: %w", err)
	}
	a.Date = day.Format("2006-01-02")
	return &a, nil
}

func (r *pgxRepository) Create(ctx context.Context, a *Appointment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.appointments").
		Columns(
			"customer_name", "contact_phone", "contact_email", "vehicle_reference",
			"day", "slot_time", "status", "origin", "appointment_type", "notes",
			"created_by", "updated_by",
		).
		Values(
			a.CustomerName, a.ContactPhone, a.ContactEmail, a.VehicleReference,
			a.Date, a.Time, a.Status, a.Origin, a.AppointmentType, a.Notes,
			a.CreatedBy, a.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create appointment query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(apptColumns...).
		From("public.appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get appointment query failed: %w", err)
	}

	return scanAppointment(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Appointment, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	cols := append(append([]string{}, apptColumns...), "count(*) OVER() AS total_count")
	query := psql.Select(cols...).From("public.appointments")

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Origin != "" {
		query = query.Where(squirrel.Eq{"origin": filter.Origin})
	}
	if filter.DateFrom != "" {
		query = query.Where(squirrel.GtOrEq{"day": filter.DateFrom})
	}
	if filter.DateTo != "" {
		query = query.Where(squirrel.LtOrEq{"day": filter.DateTo})
	}

	query = query.OrderBy("day DESC", "slot_time DESC")

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
		return nil, 0, fmt.Errorf("build list appointments query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list appointments failed: %w", err)
	}
	defer rows.Close()

	var appointments []*Appointment
	var total int

	for rows.Next() {
		var (
			a   Appointment
			day time.Time
		)
		if err := rows.Scan(
			&a.ID, &a.CustomerName, &a.ContactPhone, &a.ContactEmail, &a.VehicleReference,
			&day, &a.Time, &a.Status, &a.Origin, &a.AppointmentType, &a.Notes,
			&a.CreatedAt, &a.CreatedBy, &a.UpdatedAt, &a.UpdatedBy, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan appointment failed: %w", err)
		}
		a.Date = day.Format("2006-01-02")
		appointments = append(appointments, &a)
	}

	return appointments, total, rows.Err()
}

func (r *pgxRepository) ListByDate(ctx context.Context, date string) ([]*Appointment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(apptColumns...).
		From("public.appointments").
		Where(squirrel.Eq{"day": date}).
		OrderBy("slot_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list appointments by date query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments by date failed: %w", err)
	}
	defer rows.Close()

	var appointments []*Appointment
	for rows.Next() {
		var (
			a   Appointment
			day time.Time
		)
		if err := rows.Scan(
			&a.ID, &a.CustomerName, &a.ContactPhone, &a.ContactEmail, &a.VehicleReference,
			&day, &a.Time, &a.Status, &a.Origin, &a.AppointmentType, &a.Notes,
			&a.CreatedAt, &a.CreatedBy, &a.UpdatedAt, &a.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan appointment failed: %w", err)
		}
		a.Date = day.Format("2006-01-02")
		appointments = append(appointments, &a)
	}

	return appointments, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, a *Appointment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.appointments").
		Set("day", a.Date).
		Set("slot_time", a.Time).
		Set("status", a.Status).
		Set("notes", a.Notes).
		Set("appointment_type", a.AppointmentType).
		Set("updated_at", squirrel.Expr("now()")).
		Set("updated_by", a.UpdatedBy).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update appointment query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update appointment failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete appointment query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete appointment failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CountByDay(ctx context.Context, from, to string) (map[string]int, error) {
	const query = `
		SELECT day, count(*)
		FROM public.appointments
		WHERE day >= $1 AND day <= $2 AND status <> 'cancelled'
		GROUP BY day
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("count appointments by day failed: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			day   time.Time
			count int
		)
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("scan appointment count failed: %w", err)
		}
		counts[day.Format("2006-01-02")] = count
	}

	return counts, rows.Err()
}
