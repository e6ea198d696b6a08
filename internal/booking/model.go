package booking

import (
	"net/http"

	"github.com/altorracars/dealership-backend/internal/pkg/apperror"
)

var (
	// ErrSlotTaken is returned when the requested (date, time) pair is
	// already present in the booked-slots index. It is never retried here;
	// the caller must offer the customer a different time.
	ErrSlotTaken = apperror.New(http.StatusConflict, "time slot already booked")

	ErrInvalidSlot = apperror.New(http.StatusBadRequest, "invalid date or time for slot")
)

// DaySlots is one entry of the booked-slots index: every reserved time for a
// date, in booking order. Entries are append-only; cancelling or deleting an
// appointment never removes its time from the index.
type DaySlots struct {
	Date  string   // YYYY-MM-DD
	Times []string // HH:MM, in the order they were booked
}
