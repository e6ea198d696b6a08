package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// maxAttempts bounds the transaction retry loop. A retry re-reads the
// committed index, so a genuine collision resolves to ErrSlotTaken on the
// second pass; more than a few attempts means the store is struggling.
const maxAttempts = 3

// Service arbitrates concurrent reservations of calendar slots. BookSlot is
// the only operation in the system with a real cross-client race.
type Service interface {
	// BookSlot reserves (date, time) or fails with ErrSlotTaken. On success
	// the caller is expected to create the appointment record; nothing is
	// partially written on failure.
	BookSlot(ctx context.Context, date, timeOfDay string) error

	BookedTimes(ctx context.Context, date string) ([]string, error)
	BookedRange(ctx context.Context, from, to string) ([]DaySlots, error)
}

type service struct {
	repo Repository
}

// NewService creates a new booking Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) BookSlot(ctx context.Context, date, timeOfDay string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidSlot
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return ErrInvalidSlot
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = s.repo.AppendSlot(ctx, date, timeOfDay)
		if err == nil || !retryable(err) {
			return err
		}
		log.Debug().
			Str("date", date).
			Str("time", timeOfDay).
			Int("attempt", attempt).
			Msg("slot booking conflict, retrying transaction")
	}
	return err
}

func (s *service) BookedTimes(ctx context.Context, date string) ([]string, error) {
	ds, err := s.repo.GetDaySlots(ctx, date)
	if err != nil {
		return nil, err
	}
	return ds.Times, nil
}

func (s *service) BookedRange(ctx context.Context, from, to string) ([]DaySlots, error) {
	return s.repo.ListRange(ctx, from, to)
}
