package audit

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Service records and lists the appointment audit trail.
type Service interface {
	// Record appends an entry on a best-effort basis. Failures are logged
	// and swallowed so the primary operation is never blocked or rolled
	// back by its audit side channel.
	Record(ctx context.Context, appointmentID, action, actor, detail string)

	List(ctx context.Context, filter Filter) ([]*Entry, int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, appointmentID, action, actor, detail string) {
	e := &Entry{
		AppointmentID: appointmentID,
		Action:        action,
		Actor:         actor,
		Detail:        detail,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		log.Warn().
			Err(err).
			Str("appointment_id", appointmentID).
			Str("action", action).
			Msg("failed to record audit entry")
	}
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Entry, int, error) {
	return s.repo.List(ctx, filter)
}
