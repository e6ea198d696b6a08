package booking

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIndexRepo replays a scripted sequence of AppendSlot results.
type fakeIndexRepo struct {
	results []error
	calls   int
}

func (f *fakeIndexRepo) AppendSlot(context.Context, string, string) error {
	f.calls++
	if f.calls > len(f.results) {
		return nil
	}
	return f.results[f.calls-1]
}

func (f *fakeIndexRepo) GetDaySlots(_ context.Context, date string) (*DaySlots, error) {
	return &DaySlots{Date: date, Times: []string{"09:00", "11:00"}}, nil
}

func (f *fakeIndexRepo) ListRange(context.Context, string, string) ([]DaySlots, error) {
	return nil, nil
}

func conflictErr(code string) error {
	return fmt.Errorf("append booked slot failed: %w", &pgconn.PgError{Code: code})
}

func TestBookSlotValidatesInput(t *testing.T) {
	repo := &fakeIndexRepo{}
	s := NewService(repo)

	tests := []struct {
		name string
		date string
		time string
	}{
		{"Bad date format", "10/03/2025", "09:00"},
		{"Impossible date", "2025-13-40", "09:00"},
		{"Bad time format", "2025-03-10", "9am"},
		{"Impossible time", "2025-03-10", "25:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.BookSlot(context.Background(), tt.date, tt.time)
			assert.ErrorIs(t, err, ErrInvalidSlot)
		})
	}
	assert.Equal(t, 0, repo.calls, "malformed input must not reach the store")
}

func TestBookSlotSucceeds(t *testing.T) {
	repo := &fakeIndexRepo{}
	s := NewService(repo)

	err := s.BookSlot(context.Background(), "2025-03-10", "09:00")

	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
}

func TestBookSlotTakenIsFinal(t *testing.T) {
	repo := &fakeIndexRepo{results: []error{ErrSlotTaken}}
	s := NewService(repo)

	err := s.BookSlot(context.Background(), "2025-03-10", "09:00")

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 1, repo.calls, "a booked slot is not a transient conflict")
}

func TestBookSlotRetriesTransientConflicts(t *testing.T) {
	t.Run("Serialization failure then success", func(t *testing.T) {
		repo := &fakeIndexRepo{results: []error{conflictErr(pgerrcode.SerializationFailure)}}
		s := NewService(repo)

		err := s.BookSlot(context.Background(), "2025-03-10", "09:00")

		require.NoError(t, err)
		assert.Equal(t, 2, repo.calls)
	})

	t.Run("Conflict resolves to slot taken on re-read", func(t *testing.T) {
		// The race loser retries and now sees the winner's committed append.
		repo := &fakeIndexRepo{results: []error{
			conflictErr(pgerrcode.UniqueViolation),
			ErrSlotTaken,
		}}
		s := NewService(repo)

		err := s.BookSlot(context.Background(), "2025-03-10", "09:00")

		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.Equal(t, 2, repo.calls)
	})

	t.Run("Attempts are bounded", func(t *testing.T) {
		repo := &fakeIndexRepo{results: []error{
			conflictErr(pgerrcode.SerializationFailure),
			conflictErr(pgerrcode.DeadlockDetected),
			conflictErr(pgerrcode.SerializationFailure),
			conflictErr(pgerrcode.SerializationFailure),
		}}
		s := NewService(repo)

		err := s.BookSlot(context.Background(), "2025-03-10", "09:00")

		assert.Error(t, err)
		assert.Equal(t, maxAttempts, repo.calls)
	})
}

func TestBookSlotNonRetryableError(t *testing.T) {
	storeDown := fmt.Errorf("begin book slot tx failed: connection refused")
	repo := &fakeIndexRepo{results: []error{storeDown}}
	s := NewService(repo)

	err := s.BookSlot(context.Background(), "2025-03-10", "09:00")

	assert.ErrorIs(t, err, storeDown)
	assert.Equal(t, 1, repo.calls)
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(conflictErr(pgerrcode.SerializationFailure)))
	assert.True(t, retryable(conflictErr(pgerrcode.DeadlockDetected)))
	assert.True(t, retryable(conflictErr(pgerrcode.UniqueViolation)))
	assert.False(t, retryable(conflictErr(pgerrcode.NotNullViolation)))
	assert.False(t, retryable(ErrSlotTaken))
	assert.False(t, retryable(nil))
}

func TestBookedTimes(t *testing.T) {
	s := NewService(&fakeIndexRepo{})

	times, err := s.BookedTimes(context.Background(), "2025-03-10")

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00"}, times)
}
