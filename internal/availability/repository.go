package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// errConfigMissing signals that the singleton config row has not been written
// yet; the service substitutes the defaults.
var errConfigMissing = errors.New("availability config missing")

// Repository persists the weekly schedule and the per-date override layer.
type Repository interface {
	GetConfig(ctx context.Context) (*Config, error)
	SaveConfig(ctx context.Context, cfg *Config) error

	ListOverrides(ctx context.Context) ([]DayOverride, error)
	UpsertOverride(ctx context.Context, ov DayOverride) error
	DeleteOverride(ctx context.Context, date string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetConfig(ctx context.Context) (*Config, error) {
	const query = `
		SELECT weekly_days, start_hour, end_hour, slot_interval_minutes, updated_at, updated_by
		FROM public.availability_config
		WHERE id = true
	`

	var (
		days int16Weekdays
		cfg  Config
	)
	if err := r.pool.QueryRow(ctx, query).Scan(
		&days,
		&cfg.StartHour,
		&cfg.EndHour,
		&cfg.SlotIntervalMinutes,
		&cfg.UpdatedAt,
		&cfg.UpdatedBy,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errConfigMissing
		}
		return nil, fmt.Errorf("get availability config failed: %w", err)
	}

	cfg.WeeklyDays = days.weekdays()
	return &cfg, nil
}

func (r *pgxRepository) SaveConfig(ctx context.Context, cfg *Config) error {
	// Singleton row keyed by a constant true.
	const query = `
		INSERT INTO public.availability_config (id, weekly_days, start_hour, end_hour, slot_interval_minutes, updated_at, updated_by)
		VALUES (true, $1, $2, $3, $4, now(), $5)
		ON CONFLICT (id) DO UPDATE SET
			weekly_days = EXCLUDED.weekly_days,
			start_hour = EXCLUDED.start_hour,
			end_hour = EXCLUDED.end_hour,
			slot_interval_minutes = EXCLUDED.slot_interval_minutes,
			updated_at = now(),
			updated_by = EXCLUDED.updated_by
		RETURNING updated_at
	`

	days := make([]int16, len(cfg.WeeklyDays))
	for i, d := range cfg.WeeklyDays {
		days[i] = int16(d)
	}

	if err := r.pool.QueryRow(
		ctx, query, days, cfg.StartHour, cfg.EndHour, cfg.SlotIntervalMinutes, cfg.UpdatedBy,
	).Scan(&cfg.UpdatedAt); err != nil {
		return fmt.Errorf("save availability config failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListOverrides(ctx context.Context) ([]DayOverride, error) {
	const query = `
		SELECT day, full_day, blocked_times
		FROM public.availability_overrides
		ORDER BY day
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list availability overrides failed: %w", err)
	}
	defer rows.Close()

	var overrides []DayOverride
	for rows.Next() {
		var (
			ov  DayOverride
			day time.Time
		)
		if err := rows.Scan(&day, &ov.FullDay, &ov.BlockedTimes); err != nil {
			return nil, fmt.Errorf("scan availability override failed: %w", err)
		}
		ov.Date = FormatDate(day)
		overrides = append(overrides, ov)
	}

	return overrides, rows.Err()
}

func (r *pgxRepository) UpsertOverride(ctx context.Context, ov DayOverride) error {
	const query = `
		INSERT INTO public.availability_overrides (day, full_day, blocked_times)
		VALUES ($1, $2, $3)
		ON CONFLICT (day) DO UPDATE SET
			full_day = EXCLUDED.full_day,
			blocked_times = EXCLUDED.blocked_times
	`

	times := ov.BlockedTimes
	if ov.FullDay || times == nil {
		// A full-day row never carries partial times.
		times = []string{}
	}

	if _, err := r.pool.Exec(ctx, query, ov.Date, ov.FullDay, times); err != nil {
		return fmt.Errorf("upsert availability override failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) DeleteOverride(ctx context.Context, date string) error {
	const query = `DELETE FROM public.availability_overrides WHERE day = $1`

	// Deleting a date with no override row is a no-op, not an error.
	if _, err := r.pool.Exec(ctx, query, date); err != nil {
		return fmt.Errorf("delete availability override failed: %w", err)
	}
	return nil
}

// int16Weekdays adapts a smallint[] column to []time.Weekday.
type int16Weekdays []int16

func (d int16Weekdays) weekdays() []time.Weekday {
	out := make([]time.Weekday, len(d))
	for i, v := range d {
		out[i] = time.Weekday(v)
	}
	return out
}
