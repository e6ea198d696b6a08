package realtime

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Hub fans appointment change events out to connected back-office clients.
// Subscribers that fall behind are dropped so a stuck socket can never block
// the Postgres listener.
type Hub struct {
	mu   sync.Mutex
	subs map[chan []byte]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[chan []byte]struct{}),
	}
}

// Subscribe registers a new subscriber and returns its event channel.
func (h *Hub) Subscribe() chan []byte {
	ch := make(chan []byte, 16)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(ch chan []byte) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Broadcast delivers the payload to every subscriber. A subscriber with a
// full buffer is dropped.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- payload:
		default:
			delete(h.subs, ch)
			close(ch)
			log.Warn().Msg("dropping slow realtime subscriber")
		}
	}
}
