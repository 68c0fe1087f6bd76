package goal

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/sesh-ledger/internal/domain"
)

// Broker fans goal events out to in-process subscribers. Publish never
// blocks: a subscriber whose buffer is full misses the event.
type Broker struct {
	mu     sync.RWMutex
	subs   map[uint64]chan domain.GoalEvent
	nextID uint64
	log    *slog.Logger
}

// NewBroker creates an empty broker.
func NewBroker(log *slog.Logger) *Broker {
	return &Broker{
		subs: make(map[uint64]chan domain.GoalEvent),
		log:  log.With("component", "goal_broker"),
	}
}

// Subscribe registers a subscriber with the given buffer size. The returned
// cancel func unregisters it and closes the channel; it is safe to call more
// than once.
func (b *Broker) Subscribe(buffer int) (<-chan domain.GoalEvent, func()) {
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan domain.GoalEvent, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers events to every subscriber without blocking.
func (b *Broker) Publish(ctx context.Context, events ...domain.GoalEvent) {
	if len(events) == 0 {
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		for _, e := range events {
			select {
			case ch <- e:
			default:
				b.log.WarnContext(ctx, "goal event dropped, subscriber buffer full",
					slog.Uint64("subscriber", id),
					slog.String("goal_id", e.GoalID.String()),
					slog.String("kind", string(e.Kind)),
				)
			}
		}
	}
}

// Subscribers returns the number of registered subscribers.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
