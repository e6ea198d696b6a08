package booking

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

// Repository persists the booked-slots index.
type Repository interface {
	// AppendSlot atomically verifies the time is not yet present for the
	// date and appends it. The read-check-append runs as one serializable
	// transaction; a losing writer is surfaced as a retryable error or, once
	// the winner's append is visible, as ErrSlotTaken.
	AppendSlot(ctx context.Context, date, timeOfDay string) error

	GetDaySlots(ctx context.Context, date string) (*DaySlots, error)
	ListRange(ctx context.Context, from, to string) ([]DaySlots, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) AppendSlot(ctx context.Context, date, timeOfDay string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin book slot tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	var times []string
	err = tx.QueryRow(ctx,
		`SELECT times FROM public.booked_slots WHERE day = $1`, date,
	).Scan(&times)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("read booked slots failed: %w", err)
	}

	for _, existing := range times {
		if existing == timeOfDay {
			return ErrSlotTaken
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO public.booked_slots (day, times)
		VALUES ($1, ARRAY[$2::text])
		ON CONFLICT (day) DO UPDATE SET times = array_append(public.booked_slots.times, $2)
	`, date, timeOfDay)
	if err != nil {
		return fmt.Errorf("append booked slot failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit book slot tx failed: %w", err)
	}
	return nil
}

// retryable reports whether the error is a transient transaction conflict:
// the store rejected one of two racing writers and the whole transaction must
// be re-run against the winner's committed state.
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.UniqueViolation:
		return true
	}
	return false
}

func (r *pgxRepository) GetDaySlots(ctx context.Context, date string) (*DaySlots, error) {
	ds := &DaySlots{Date: date}

	err := r.pool.QueryRow(ctx,
		`SELECT times FROM public.booked_slots WHERE day = $1`, date,
	).Scan(&ds.Times)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// A date with no entry simply has no bookings yet.
			return ds, nil
		}
		return nil, fmt.Errorf("get booked slots failed: %w", err)
	}
	return ds, nil
}

func (r *pgxRepository) ListRange(ctx context.Context, from, to string) ([]DaySlots, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT day, times
		FROM public.booked_slots
		WHERE day >= $1 AND day <= $2
		ORDER BY day
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list booked slots failed: %w", err)
	}
	defer rows.Close()

	var out []DaySlots
	for rows.Next() {
		var (
			ds  DaySlots
			day time.Time
		)
		if err := rows.Scan(&day, &ds.Times); err != nil {
			return nil, fmt.Errorf("scan booked slots failed: %w", err)
		}
		ds.Date = day.Format("2006-01-02")
		out = append(out, ds)
	}
	return out, rows.Err()
}
