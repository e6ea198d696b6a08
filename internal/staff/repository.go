package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing staff accounts from storage.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Staff, error)
	GetByID(ctx context.Context, id string) (*Staff, error)
	Create(ctx context.Context, s *Staff) error
	UpdateLastLogin(ctx context.Context, id string, t time.Time) error
	List(ctx context.Context, filter Filter) ([]*Staff, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const staffColumns = `id, email, password_hash, display_name, role, is_active, created_at, last_login_at`

func scanStaff(row pgx.Row) (*Staff, error) {
	var s Staff
	if err := row.Scan(
		&s.ID,
		&s.Email,
		&s.PasswordHash,
		&s.DisplayName,
		&s.Role,
		&s.IsActive,
		&s.CreatedAt,
		&s.LastLoginAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan staff failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) GetByEmail(ctx context.Context, email string) (*Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM public.staff WHERE email = $1`
	return scanStaff(r.pool.QueryRow(ctx, query, email))
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM public.staff WHERE id = $1`
	return scanStaff(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) Create(ctx context.Context, s *Staff) error {
	const query = `
		INSERT INTO public.staff (email, password_hash, display_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if err := r.pool.QueryRow(
		ctx,
		query,
		s.Email,
		s.PasswordHash,
		s.DisplayName,
		s.Role,
		s.IsActive,
	).Scan(&s.ID, &s.CreatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyUsed
		}
		return fmt.Errorf("create staff failed: %w", err)
	}

	return nil
}

func (r *pgxRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	const query = `
		UPDATE public.staff
		SET last_login_at = $1
		WHERE id = $2
	`

	ct, err := r.pool.Exec(ctx, query, t, id)
	if err != nil {
		return fmt.Errorf("update last login failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Staff, int, error) {
	query := `
		SELECT ` + staffColumns + `, count(*) OVER() AS total_count
		FROM public.staff
		WHERE ($1 = '' OR role = $1)
		  AND ($2::boolean IS NULL OR is_active = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	rows, err := r.pool.Query(ctx, query, filter.Role, filter.IsActive, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list staff failed: %w", err)
	}
	defer rows.Close()

	var members []*Staff
	var total int

	for rows.Next() {
		var s Staff
		if err := rows.Scan(
			&s.ID,
			&s.Email,
			&s.PasswordHash,
			&s.DisplayName,
			&s.Role,
			&s.IsActive,
			&s.CreatedAt,
			&s.LastLoginAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan staff failed: %w", err)
		}
		members = append(members, &s)
	}

	return members, total, rows.Err()
}
