package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altorracars/dealership-backend/internal/audit"
	"github.com/altorracars/dealership-backend/internal/availability"
	"github.com/altorracars/dealership-backend/internal/booking"
)

// fakeRepo is an in-memory Repository.
type fakeRepo struct {
	created []*Appointment
	byID    map[string]*Appointment
	deleted []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[string]*Appointment)}
}

func (r *fakeRepo) Create(_ context.Context, a *Appointment) error {
	a.ID = "appt-" + time.Now().Format("150405.000000")
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	copied := *a
	r.created = append(r.created, &copied)
	r.byID[a.ID] = a
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeRepo) List(context.Context, Filter) ([]*Appointment, int, error) {
	return nil, 0, nil
}

func (r *fakeRepo) ListByDate(context.Context, string) ([]*Appointment, error) {
	return nil, nil
}

func (r *fakeRepo) Update(_ context.Context, a *Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	a.UpdatedAt = time.Now().UTC()
	copied := *a
	r.byID[a.ID] = &copied
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRepo) CountByDay(context.Context, string, string) (map[string]int, error) {
	return nil, nil
}

// fakeAvailability reports every slot open unless closed is set.
type fakeAvailability struct {
	closed bool
}

func (f *fakeAvailability) GetSnapshot(context.Context) (*availability.Snapshot, error) {
	return nil, nil
}

func (f *fakeAvailability) UpdateConfig(context.Context, availability.UpdateConfigRequest, string) (*availability.Config, error) {
	return nil, nil
}

func (f *fakeAvailability) SetDayOverride(context.Context, string, []string) (*availability.DayOverride, error) {
	return nil, nil
}

func (f *fakeAvailability) IsSlotOpen(context.Context, string, string) (bool, error) {
	return !f.closed, nil
}

// fakeBooking counts BookSlot calls and optionally fails them.
type fakeBooking struct {
	calls int
	err   error
}

func (f *fakeBooking) BookSlot(context.Context, string, string) error {
	f.calls++
	return f.err
}

func (f *fakeBooking) BookedTimes(context.Context, string) ([]string, error) {
	return nil, nil
}

func (f *fakeBooking) BookedRange(context.Context, string, string) ([]booking.DaySlots, error) {
	return nil, nil
}

// fakeAudit records audit actions.
type fakeAudit struct {
	actions []string
}

func (f *fakeAudit) Record(_ context.Context, _ string, action string, _ string, _ string) {
	f.actions = append(f.actions, action)
}

func (f *fakeAudit) List(context.Context, audit.Filter) ([]*audit.Entry, int, error) {
	return nil, 0, nil
}

type harness struct {
	repo    *fakeRepo
	avail   *fakeAvailability
	booking *fakeBooking
	audit   *fakeAudit
	service Service
}

func newHarness() *harness {
	h := &harness{
		repo:    newFakeRepo(),
		avail:   &fakeAvailability{},
		booking: &fakeBooking{},
		audit:   &fakeAudit{},
	}
	h.service = NewService(h.repo, h.avail, h.booking, h.audit, nil)
	return h
}

func validRequest() CreateRequest {
	return CreateRequest{
		CustomerName: "Ana Torres",
		ContactPhone: "+57 300 555 0101",
		Date:         "2025-03-10",
		Time:         "09:00",
	}
}

func TestCreateValidatesBeforeBooking(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateRequest)
	}{
		{"Missing name", func(r *CreateRequest) { r.CustomerName = "  " }},
		{"Missing phone", func(r *CreateRequest) { r.ContactPhone = "" }},
		{"Missing date", func(r *CreateRequest) { r.Date = "" }},
		{"Missing time", func(r *CreateRequest) { r.Time = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			req := validRequest()
			tt.mutate(&req)

			_, err := h.service.Create(context.Background(), req, OriginCustomer, "customer")

			assert.ErrorIs(t, err, ErrMissingFields)
			assert.Equal(t, 0, h.booking.calls, "invalid input must not reach the slot index")
			assert.Empty(t, h.repo.created)
		})
	}

	t.Run("Malformed date", func(t *testing.T) {
		h := newHarness()
		req := validRequest()
		req.Date = "10/03/2025"

		_, err := h.service.Create(context.Background(), req, OriginCustomer, "customer")

		assert.Error(t, err)
		assert.Equal(t, 0, h.booking.calls)
	})
}

func TestCreateChecksAvailabilityBeforeBooking(t *testing.T) {
	h := newHarness()
	h.avail.closed = true

	_, err := h.service.Create(context.Background(), validRequest(), OriginCustomer, "customer")

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 0, h.booking.calls)
	assert.Empty(t, h.repo.created)
}

func TestCreateSlotTakenWritesNothing(t *testing.T) {
	h := newHarness()
	h.booking.err = booking.ErrSlotTaken

	_, err := h.service.Create(context.Background(), validRequest(), OriginCustomer, "customer")

	assert.ErrorIs(t, err, booking.ErrSlotTaken)
	assert.Equal(t, 1, h.booking.calls)
	assert.Empty(t, h.repo.created)
}

func TestCreateCustomerOriginForcesPending(t *testing.T) {
	h := newHarness()
	req := validRequest()
	req.Status = StatusConfirmed // must be ignored for customer bookings

	a, err := h.service.Create(context.Background(), req, OriginCustomer, "customer")

	require.NoError(t, err)
	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, OriginCustomer, a.Origin)
	assert.Equal(t, 1, h.booking.calls)
}

func TestCreateStaffOrigin(t *testing.T) {
	t.Run("Defaults to confirmed", func(t *testing.T) {
		h := newHarness()

		a, err := h.service.Create(context.Background(), validRequest(), OriginStaff, "sales@altorra.com")

		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, a.Status)
		assert.Equal(t, "sales@altorra.com", a.CreatedBy)
	})

	t.Run("Honors a caller-supplied status", func(t *testing.T) {
		h := newHarness()
		req := validRequest()
		req.Status = StatusPending

		a, err := h.service.Create(context.Background(), req, OriginStaff, "sales@altorra.com")

		require.NoError(t, err)
		assert.Equal(t, StatusPending, a.Status)
	})

	t.Run("Staff bookings still consume the slot index", func(t *testing.T) {
		h := newHarness()
		h.booking.err = booking.ErrSlotTaken

		_, err := h.service.Create(context.Background(), validRequest(), OriginStaff, "sales@altorra.com")

		assert.ErrorIs(t, err, booking.ErrSlotTaken)
	})
}

func TestCreateDefaultsVehicleReference(t *testing.T) {
	h := newHarness()

	a, err := h.service.Create(context.Background(), validRequest(), OriginCustomer, "customer")

	require.NoError(t, err)
	assert.Equal(t, "General", a.VehicleReference)
	assert.Contains(t, h.audit.actions, "created")
}

func TestTransitionStatus(t *testing.T) {
	seed := func(t *testing.T, h *harness) *Appointment {
		t.Helper()
		a, err := h.service.Create(context.Background(), validRequest(), OriginCustomer, "customer")
		require.NoError(t, err)
		return a
	}

	t.Run("Unknown status rejected", func(t *testing.T) {
		h := newHarness()
		a := seed(t, h)

		_, err := h.service.TransitionStatus(context.Background(), a.ID, Status("archived"), TransitionRequest{}, "staff")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("Intended lifecycle flow", func(t *testing.T) {
		h := newHarness()
		a := seed(t, h)

		for _, next := range []Status{StatusConfirmed, StatusRescheduled, StatusCompleted} {
			req := TransitionRequest{}
			if next == StatusRescheduled {
				d, tm := "2025-03-11", "10:00"
				req.Date, req.Time = &d, &tm
			}
			updated, err := h.service.TransitionStatus(context.Background(), a.ID, next, req, "staff")
			require.NoError(t, err)
			assert.Equal(t, next, updated.Status)
			assert.Equal(t, "staff", updated.UpdatedBy)
		}

		assert.Equal(t, []string{"created", "confirmed", "rescheduled", "completed"}, h.audit.actions)
	})

	t.Run("Reschedule requires a new date and time", func(t *testing.T) {
		h := newHarness()
		a := seed(t, h)

		_, err := h.service.TransitionStatus(context.Background(), a.ID, StatusRescheduled, TransitionRequest{}, "staff")
		assert.ErrorIs(t, err, ErrRescheduleSlot)
	})

	t.Run("Reschedule writes the new slot onto the same record without booking it", func(t *testing.T) {
		h := newHarness()
		a := seed(t, h)
		callsAfterCreate := h.booking.calls

		d, tm := "2025-03-12", "11:00"
		updated, err := h.service.TransitionStatus(context.Background(), a.ID, StatusRescheduled,
			TransitionRequest{Date: &d, Time: &tm}, "staff")

		require.NoError(t, err)
		assert.Equal(t, a.ID, updated.ID)
		assert.Equal(t, "2025-03-12", updated.Date)
		assert.Equal(t, "11:00", updated.Time)
		assert.Equal(t, callsAfterCreate, h.booking.calls, "rescheduling bypasses the slot index")
	})

	t.Run("Cancel keeps the record and never touches the slot index", func(t *testing.T) {
		h := newHarness()
		a := seed(t, h)
		callsAfterCreate := h.booking.calls

		updated, err := h.service.TransitionStatus(context.Background(), a.ID, StatusCancelled, TransitionRequest{}, "staff")

		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, updated.Status)
		assert.Equal(t, callsAfterCreate, h.booking.calls)
	})

	t.Run("Unknown appointment", func(t *testing.T) {
		h := newHarness()

		_, err := h.service.TransitionStatus(context.Background(), "missing", StatusConfirmed, TransitionRequest{}, "staff")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	h := newHarness()
	a, err := h.service.Create(context.Background(), validRequest(), OriginStaff, "admin@altorra.com")
	require.NoError(t, err)
	callsAfterCreate := h.booking.calls

	err = h.service.Delete(context.Background(), a.ID, "admin@altorra.com")
	require.NoError(t, err)

	_, err = h.service.GetByID(context.Background(), a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, callsAfterCreate, h.booking.calls, "deletion never frees the slot index")
	assert.Contains(t, h.audit.actions, "deleted")
}
