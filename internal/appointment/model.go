package appointment

import (
	"net/http"
	"time"

	"github.com/altorracars/dealership-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "appointment not found")
	ErrMissingFields   = apperror.New(http.StatusBadRequest, "name, phone, date and time are required")
	ErrInvalidStatus   = apperror.New(http.StatusBadRequest, "invalid appointment status")
	ErrInvalidOrigin   = apperror.New(http.StatusBadRequest, "invalid appointment origin")
	ErrSlotUnavailable = apperror.New(http.StatusConflict, "selected time is not open for booking")
	ErrRescheduleSlot  = apperror.New(http.StatusBadRequest, "rescheduling requires a new date and time")
)

// Status is the closed set of appointment states.
type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusRescheduled Status = "rescheduled"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRescheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Origin records which flow created the appointment.
type Origin string

const (
	OriginCustomer Origin = "customer"
	OriginStaff    Origin = "staff"
)

// Valid reports whether o is a known origin.
func (o Origin) Valid() bool {
	return o == OriginCustomer || o == OriginStaff
}

// Appointment is a scheduled dealership visit.
type Appointment struct {
	ID               string // UUID
	CustomerName     string
	ContactPhone     string
	ContactEmail     string
	VehicleReference string // defaults to "General" when no vehicle is named
	Date             string // YYYY-MM-DD
	Time             string // HH:MM
	Status           Status
	Origin           Origin
	AppointmentType  string
	Notes            string
	CreatedAt        time.Time
	CreatedBy        string
	UpdatedAt        time.Time
	UpdatedBy        string
}

// Filter defines parameters for listing appointments.
type Filter struct {
	Status   string
	Origin   string
	DateFrom string // YYYY-MM-DD, inclusive
	DateTo   string // YYYY-MM-DD, inclusive
	Page     int
	PageSize int
}
