package http

import (
	"time"

	"github.com/altorracars/dealership-backend/internal/appointment"
)

// ListAppointmentsRequest defines query parameters for listing appointments.
type ListAppointmentsRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending confirmed rescheduled completed cancelled"`
	Origin   string `form:"origin" binding:"omitempty,oneof=customer staff"`
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type AppointmentResponse struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customer_name"`
	ContactPhone     string    `json:"contact_phone"`
	ContactEmail     string    `json:"contact_email,omitempty"`
	VehicleReference string    `json:"vehicle_reference"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Status           string    `json:"status"`
	Origin           string    `json:"origin"`
	AppointmentType  string    `json:"appointment_type,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	CreatedBy        string    `json:"created_by"`
	UpdatedAt        time.Time `json:"updated_at"`
	UpdatedBy        string    `json:"updated_by"`
}

func NewAppointmentResponse(a *appointment.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:               a.ID,
		CustomerName:     a.CustomerName,
		ContactPhone:     a.ContactPhone,
		ContactEmail:     a.ContactEmail,
		VehicleReference: a.VehicleReference,
		Date:             a.Date,
		Time:             a.Time,
		Status:           string(a.Status),
		Origin:           string(a.Origin),
		AppointmentType:  a.AppointmentType,
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt,
		CreatedBy:        a.CreatedBy,
		UpdatedAt:        a.UpdatedAt,
		UpdatedBy:        a.UpdatedBy,
	}
}

// CreateAppointmentBody is shared by the public booking flow and the staff
// creation path; status is honored for staff only.
type CreateAppointmentBody struct {
	CustomerName     string `json:"customer_name" binding:"required"`
	ContactPhone     string `json:"contact_phone" binding:"required"`
	ContactEmail     string `json:"contact_email" binding:"omitempty,email"`
	VehicleReference string `json:"vehicle_reference"`
	Date             string `json:"date" binding:"required,datetime=2006-01-02"`
	Time             string `json:"time" binding:"required,datetime=15:04"`
	AppointmentType  string `json:"appointment_type"`
	Notes            string `json:"notes"`
	Status           string `json:"status" binding:"omitempty,oneof=pending confirmed rescheduled completed cancelled"`
}

// TransitionBody carries a status transition. Date and time are required when
// status is rescheduled.
type TransitionBody struct {
	Status string  `json:"status" binding:"required,oneof=pending confirmed rescheduled completed cancelled"`
	Date   *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time   *string `json:"time" binding:"omitempty,datetime=15:04"`
	Notes  *string `json:"notes"`
}
