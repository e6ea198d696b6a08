package appointment

import (
	"context"
	"strings"

	"github.com/altorracars/dealership-backend/internal/audit"
	"github.com/altorracars/dealership-backend/internal/availability"
	"github.com/altorracars/dealership-backend/internal/booking"
)

// Notifier pushes change events to live back-office subscribers. Pushes are
// best-effort and must never fail the operation that triggered them.
type Notifier interface {
	AppointmentChanged(appointmentID string, action string)
}

type CreateRequest struct {
	CustomerName     string
	ContactPhone     string
	ContactEmail     string
	VehicleReference string
	Date             string // YYYY-MM-DD
	Time             string // HH:MM
	AppointmentType  string
	Notes            string
	Status           Status // honored for staff-origin creation only
}

// TransitionRequest carries the optional fields of a status transition.
// Date and Time are required when the new status is rescheduled.
type TransitionRequest struct {
	Date  *string
	Time  *string
	Notes *string
}

// Service governs the appointment lifecycle. Every mutation is audit-logged
// and announced to live subscribers on a best-effort basis.
type Service interface {
	Create(ctx context.Context, req CreateRequest, origin Origin, actor string) (*Appointment, error)
	GetByID(ctx context.Context, id string) (*Appointment, error)
	List(ctx context.Context, filter Filter) ([]*Appointment, int, error)
	ListByDate(ctx context.Context, date string) ([]*Appointment, error)
	TransitionStatus(ctx context.Context, id string, newStatus Status, req TransitionRequest, actor string) (*Appointment, error)
	Delete(ctx context.Context, id string, actor string) error
	CountByDay(ctx context.Context, from, to string) (map[string]int, error)
}

type service struct {
	repo         Repository
	availability availability.Service
	booking      booking.Service
	audit        audit.Service
	notifier     Notifier
}

// NewService creates a new appointment Service. notifier may be nil.
func NewService(
	repo Repository,
	availabilityService availability.Service,
	bookingService booking.Service,
	auditService audit.Service,
	notifier Notifier,
) Service {
	return &service{
		repo:         repo,
		availability: availabilityService,
		booking:      bookingService,
		audit:        auditService,
		notifier:     notifier,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest, origin Origin, actor string) (*Appointment, error) {
	if !origin.Valid() {
		return nil, ErrInvalidOrigin
	}

	// Validate before touching the store: a rejected request must not
	// consume a slot.
	name := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.ContactPhone)
	if name == "" || phone == "" || req.Date == "" || req.Time == "" {
		return nil, ErrMissingFields
	}
	if _, err := availability.ParseDate(req.Date); err != nil {
		return nil, err
	}
	if !availability.ValidTime(req.Time) {
		return nil, availability.ErrInvalidTime
	}

	status := StatusPending
	if origin == OriginStaff {
		status = StatusConfirmed
		if req.Status != "" {
			if !req.Status.Valid() {
				return nil, ErrInvalidStatus
			}
			status = req.Status
		}
	}

	open, err := s.availability.IsSlotOpen(ctx, req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, ErrSlotUnavailable
	}

	// Reserve the slot first; the appointment record is only written once
	// the index transaction has committed.
	if err := s.booking.BookSlot(ctx, req.Date, req.Time); err != nil {
		return nil, err
	}

	vehicle := strings.TrimSpace(req.VehicleReference)
	if vehicle == "" {
		vehicle = "General"
	}

	a := &Appointment{
		CustomerName:     name,
		ContactPhone:     phone,
		ContactEmail:     strings.TrimSpace(req.ContactEmail),
		VehicleReference: vehicle,
		Date:             req.Date,
		Time:             req.Time,
		Status:           status,
		Origin:           origin,
		AppointmentType:  strings.TrimSpace(req.AppointmentType),
		Notes:            req.Notes,
		CreatedBy:        actor,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, a.ID, "created", actor, string(origin)+" booking at "+a.Date+" "+a.Time)
	s.notify(a.ID, "created")

	return a, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Appointment, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListByDate(ctx context.Context, date string) ([]*Appointment, error) {
	return s.repo.ListByDate(ctx, date)
}

func (s *service) TransitionStatus(ctx context.Context, id string, newStatus Status, req TransitionRequest, actor string) (*Appointment, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if newStatus == StatusRescheduled {
		if req.Date == nil || req.Time == nil {
			return nil, ErrRescheduleSlot
		}
		if _, err := availability.ParseDate(*req.Date); err != nil {
			return nil, err
		}
		if !availability.ValidTime(*req.Time) {
			return nil, availability.ErrInvalidTime
		}
		// The new slot is written onto the same record without going through
		// the booked-slots index, and the original slot stays consumed.
		a.Date = *req.Date
		a.Time = *req.Time
	}

	if req.Notes != nil {
		a.Notes = *req.Notes
	}

	a.Status = newStatus
	a.UpdatedBy = actor

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, a.ID, string(newStatus), actor, "appointment for "+a.Date+" "+a.Time)
	s.notify(a.ID, string(newStatus))

	return a, nil
}

func (s *service) Delete(ctx context.Context, id string, actor string) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Hard delete. The booked-slots index keeps the entry, so the slot does
	// not reopen for booking.
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, id, "deleted", actor, "appointment for "+a.Date+" "+a.Time)
	s.notify(id, "deleted")

	return nil
}

func (s *service) CountByDay(ctx context.Context, from, to string) (map[string]int, error) {
	return s.repo.CountByDay(ctx, from, to)
}

func (s *service) notify(id, action string) {
	if s.notifier != nil {
		s.notifier.AppointmentChanged(id, action)
	}
}
