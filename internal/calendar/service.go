package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/altorracars/dealership-backend/internal/appointment"
	"github.com/altorracars/dealership-backend/internal/availability"
	"github.com/altorracars/dealership-backend/internal/booking"
	"github.com/altorracars/dealership-backend/internal/pkg/apperror"
)

var ErrInvalidMonth = apperror.New(http.StatusBadRequest, "invalid year or month")

// DayDetail is the staff day-management view: the slot grid plus the
// appointments already scheduled on the date.
type DayDetail struct {
	Date         string
	Slots        []SlotView
	Appointments []*appointment.Appointment
}

// Service is the read-only projection over availability, bookings and
// appointments. It holds no state of its own and performs no mutations.
type Service interface {
	Month(ctx context.Context, year int, month time.Month) ([]DayCell, error)
	Day(ctx context.Context, date string) (*DayDetail, error)
	DaySlots(ctx context.Context, date string) ([]SlotView, error)
}

type service struct {
	availability availability.Service
	booking      booking.Service
	appointments appointment.Service
	now          func() time.Time
}

// NewService creates a new calendar Service.
func NewService(
	availabilityService availability.Service,
	bookingService booking.Service,
	appointmentService appointment.Service,
) Service {
	return &service{
		availability: availabilityService,
		booking:      bookingService,
		appointments: appointmentService,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Month(ctx context.Context, year int, month time.Month) ([]DayCell, error) {
	if year < 2000 || year > 2200 || month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}

	snap, err := s.availability.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	counts, err := s.appointments.CountByDay(ctx, availability.FormatDate(first), availability.FormatDate(last))
	if err != nil {
		return nil, fmt.Errorf("count appointments for month failed: %w", err)
	}

	return ProjectMonth(year, month, s.now(), snap, counts), nil
}

func (s *service) Day(ctx context.Context, date string) (*DayDetail, error) {
	slots, err := s.DaySlots(ctx, date)
	if err != nil {
		return nil, err
	}

	appts, err := s.appointments.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return &DayDetail{
		Date:         date,
		Slots:        slots,
		Appointments: appts,
	}, nil
}

func (s *service) DaySlots(ctx context.Context, date string) ([]SlotView, error) {
	day, err := availability.ParseDate(date)
	if err != nil {
		return nil, err
	}

	snap, err := s.availability.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	booked, err := s.booking.BookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	return ProjectDay(day, snap, booked), nil
}
