package audit

import (
	"net/http"
	"time"

	"github.com/altorracars/dealership-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "audit entry not found")

// Entry is one line of the appointment audit trail. Entries are append-only
// and written on a best-effort basis: losing one must never fail the
// operation it describes.
type Entry struct {
	ID            string
	AppointmentID string
	Action        string // created, or the status a transition set, or deleted
	Actor         string
	Detail        string
	CreatedAt     time.Time
}

// Filter defines parameters for listing audit entries.
type Filter struct {
	AppointmentID string
	Action        string
	Page          int
	PageSize      int
}
