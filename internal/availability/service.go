package availability

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultConfig is the schedule used before staff have saved one.
func DefaultConfig() Config {
	return Config{
		WeeklyDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		},
		StartHour:           9,
		EndHour:             18,
		SlotIntervalMinutes: 60,
	}
}

type UpdateConfigRequest struct {
	WeeklyDays          []time.Weekday
	StartHour           int
	EndHour             int
	SlotIntervalMinutes int
}

// Service is the single source of truth for whether a (date, time) pair is
// open for new bookings, independent of whether it is already booked.
type Service interface {
	GetSnapshot(ctx context.Context) (*Snapshot, error)
	UpdateConfig(ctx context.Context, req UpdateConfigRequest, actor string) (*Config, error)

	// SetDayOverride applies the three-way override policy for a date:
	// full coverage promotes to a full-day block, an empty request clears
	// every override, anything else is stored as a partial block.
	SetDayOverride(ctx context.Context, date string, blockedTimes []string) (*DayOverride, error)

	// IsSlotOpen answers against a fresh snapshot.
	IsSlotOpen(ctx context.Context, date, timeOfDay string) (bool, error)
}

type service struct {
	repo Repository
}

// NewService creates a new availability Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	cfg, err := s.repo.GetConfig(ctx)
	if err != nil {
		if errors.Is(err, errConfigMissing) {
			def := DefaultConfig()
			cfg = &def
		} else {
			return nil, err
		}
	}

	overrides, err := s.repo.ListOverrides(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Config:    *cfg,
		Overrides: make(map[string]DayOverride, len(overrides)),
	}
	for _, ov := range overrides {
		snap.Overrides[ov.Date] = ov
	}
	return snap, nil
}

func (s *service) UpdateConfig(ctx context.Context, req UpdateConfigRequest, actor string) (*Config, error) {
	if req.StartHour < 0 || req.EndHour > 24 || req.StartHour >= req.EndHour {
		return nil, ErrInvalidHours
	}
	if req.SlotIntervalMinutes != 30 && req.SlotIntervalMinutes != 60 {
		return nil, ErrInvalidInterval
	}

	seen := make(map[time.Weekday]bool, len(req.WeeklyDays))
	var days []time.Weekday
	for _, d := range req.WeeklyDays {
		if d < time.Sunday || d > time.Saturday {
			return nil, fmt.Errorf("invalid weekday %d", d)
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}

	cfg := &Config{
		WeeklyDays:          days,
		StartHour:           req.StartHour,
		EndHour:             req.EndHour,
		SlotIntervalMinutes: req.SlotIntervalMinutes,
		UpdatedBy:           actor,
	}

	if err := s.repo.SaveConfig(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *service) SetDayOverride(ctx context.Context, date string, blockedTimes []string) (*DayOverride, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}
	for _, t := range blockedTimes {
		if !ValidTime(t) {
			return nil, ErrInvalidTime
		}
	}

	cfg, err := s.repo.GetConfig(ctx)
	if err != nil {
		if !errors.Is(err, errConfigMissing) {
			return nil, err
		}
		def := DefaultConfig()
		cfg = &def
	}

	decision := resolveOverride(blockedTimes, cfg.Slots())

	switch {
	case decision.clear:
		if err := s.repo.DeleteOverride(ctx, date); err != nil {
			return nil, err
		}
		return &DayOverride{Date: date}, nil

	case decision.fullDay:
		ov := DayOverride{Date: date, FullDay: true}
		if err := s.repo.UpsertOverride(ctx, ov); err != nil {
			return nil, err
		}
		return &ov, nil

	default:
		ov := DayOverride{Date: date, BlockedTimes: decision.blocked}
		if err := s.repo.UpsertOverride(ctx, ov); err != nil {
			return nil, err
		}
		return &ov, nil
	}
}

func (s *service) IsSlotOpen(ctx context.Context, date, timeOfDay string) (bool, error) {
	day, err := ParseDate(date)
	if err != nil {
		return false, err
	}
	if !ValidTime(timeOfDay) {
		return false, ErrInvalidTime
	}

	snap, err := s.GetSnapshot(ctx)
	if err != nil {
		return false, err
	}
	return snap.IsSlotOpen(day, timeOfDay), nil
}
