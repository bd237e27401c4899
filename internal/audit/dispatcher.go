package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Event struct {
	DoctorID   uuid.UUID
	Action     string
	Entity     string
	EntityID   *uuid.UUID
	Metadata   any
	OccurredAt time.Time
}

// Sink persists or forwards audit events.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

// Dispatcher fans events out to its sinks on a background worker so that
// auditing never blocks or fails an admission.
type Dispatcher struct {
	sinks []Sink
	log   zerolog.Logger
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(log zerolog.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.Write(ctx, ev); err != nil {
				d.log.Error().Err(err).Str("action", ev.Action).Msg("audit sink failed")
			}
			cancel()
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits until queued ones are written or ctx ends.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
