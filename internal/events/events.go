// Package events publishes catalog change notifications so storefront
// consumers can invalidate rendered pages and caches.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/partshub/apiserver/internal/mq"
)

// Actions carried by change events.
const (
	ActionCreated = "created"
)

// ChangeEvent describes one write against a catalog or content entity.
type ChangeEvent struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ID         int       `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits change events to a broker channel. A nil Publisher
// is valid and publishes nothing, so callers never branch on whether
// events are configured.
type Publisher struct {
	backend mq.Backend
	channel string
}

// NewPublisher wraps the broker backend. Returns nil when backend is
// nil so the disabled case stays a nil receiver.
func NewPublisher(backend mq.Backend, channel string) *Publisher {
	if backend == nil {
		return nil
	}
	return &Publisher{backend: backend, channel: channel}
}

// Created publishes a creation event. Publishing is best-effort: a
// broker failure is logged and never fails the write that triggered it.
func (p *Publisher) Created(ctx context.Context, entity string, id int) {
	if p == nil {
		return
	}

	event := ChangeEvent{
		Entity:     entity,
		Action:     ActionCreated,
		ID:         id,
		OccurredAt: time.Now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("events: marshal %s event: %v", entity, err)
		return
	}

	attrs := map[string]string{"entity": entity, "action": event.Action}
	if _, err := p.backend.Publish(ctx, p.channel, data, attrs); err != nil {
		log.Printf("events: publish %s event: %v", entity, err)
	}
}
