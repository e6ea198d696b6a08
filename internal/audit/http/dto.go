package http

import (
	"time"

	"github.com/altorracars/dealership-backend/internal/audit"
)

// ListEntriesRequest defines query parameters for listing audit entries.
type ListEntriesRequest struct {
	AppointmentID string `form:"appointment_id" binding:"omitempty,uuid"`
	Action        string `form:"action"`
	Page          int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type EntryResponse struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointment_id"`
	Action        string    `json:"action"`
	Actor         string    `json:"actor"`
	Detail        string    `json:"detail,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewEntryResponse(e *audit.Entry) EntryResponse {
	return EntryResponse{
		ID:            e.ID,
		AppointmentID: e.AppointmentID,
		Action:        e.Action,
		Actor:         e.Actor,
		Detail:        e.Detail,
		CreatedAt:     e.CreatedAt,
	}
}
