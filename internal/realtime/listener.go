package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// channel is the Postgres notification channel carrying appointment changes.
const channel = "appointments"

// Event is the payload published on every appointment mutation.
type Event struct {
	AppointmentID string `json:"appointment_id"`
	Action        string `json:"action"`
}

// Publisher announces appointment changes through Postgres so every server
// instance's listener picks them up.
type Publisher struct {
	pool *pgxpool.Pool
}

// NewPublisher creates a Publisher on the shared pool.
func NewPublisher(pool *pgxpool.Pool) *Publisher {
	return &Publisher{pool: pool}
}

// AppointmentChanged publishes a change event. Best effort: a failed notify
// is logged and dropped, never surfaced to the mutating operation.
func (p *Publisher) AppointmentChanged(appointmentID string, action string) {
	payload, err := json.Marshal(Event{AppointmentID: appointmentID, Action: action})
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := p.pool.Exec(ctx, "SELECT pg_notify($1, $2)", channel, string(payload)); err != nil {
		log.Warn().Err(err).Msg("failed to publish appointment change")
	}
}

// Listener holds a dedicated connection on LISTEN and forwards notifications
// into the hub.
type Listener struct {
	pool *pgxpool.Pool
	hub  *Hub
}

// NewListener creates a Listener feeding the given hub.
func NewListener(pool *pgxpool.Pool, hub *Hub) *Listener {
	return &Listener{pool: pool, hub: hub}
}

// Run blocks until ctx is cancelled, reconnecting with a short backoff when
// the listening connection drops.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Msg("realtime listener disconnected, retrying")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(3 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
		return err
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		l.hub.Broadcast([]byte(notification.Payload))
	}
}
