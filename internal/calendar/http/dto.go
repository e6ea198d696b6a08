package http

import (
	apptHttp "github.com/altorracars/dealership-backend/internal/appointment/http"
	"github.com/altorracars/dealership-backend/internal/calendar"
)

// MonthRequest binds the /calendar/:year/:month path parameters.
type MonthRequest struct {
	Year  int `uri:"year" binding:"required,min=2000,max=2200"`
	Month int `uri:"month" binding:"required,min=1,max=12"`
}

// DayDetailResponse is the staff day editor payload.
type DayDetailResponse struct {
	Date         string                         `json:"date"`
	Slots        []calendar.SlotView            `json:"slots"`
	Appointments []apptHttp.AppointmentResponse `json:"appointments"`
}

func NewDayDetailResponse(d *calendar.DayDetail) DayDetailResponse {
	appts := make([]apptHttp.AppointmentResponse, len(d.Appointments))
	for i, a := range d.Appointments {
		appts[i] = apptHttp.NewAppointmentResponse(a)
	}
	slots := d.Slots
	if slots == nil {
		slots = []calendar.SlotView{}
	}
	return DayDetailResponse{
		Date:         d.Date,
		Slots:        slots,
		Appointments: appts,
	}
}
