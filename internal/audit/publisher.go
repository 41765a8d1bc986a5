package audit

import (
	"context"
	"time"

	"matchmaker/pkg/requestcontext"
)

// Store persists audit events in append order.
type Store interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context) ([]Event, error)
}

// Publisher captures structured audit events. It is append-only and delegates
// persistence to a Store so tests can swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

// Emit stamps the event with the request time and id when missing and stores it.
func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if base.Timestamp.IsZero() {
		base.Timestamp = requestcontext.Now(ctx)
	}
	if base.RequestID == "" {
		base.RequestID = requestcontext.RequestID(ctx)
	}
	return p.store.Append(ctx, base)
}

func (p *Publisher) List(ctx context.Context) ([]Event, error) {
	return p.store.List(ctx)
}

// Since returns the events at or after t.
func (p *Publisher) Since(ctx context.Context, t time.Time) ([]Event, error) {
	events, err := p.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := events[:0:0]
	for _, e := range events {
		if !e.Timestamp.Before(t) {
			out = append(out, e)
		}
	}
	return out, nil
}
