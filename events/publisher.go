// Package events publishes change notifications for menu resources after a write commits.
package events

import (
	"context"
	"fmt"
	"time"
)

// Entities and actions carried by change events.
const (
	EntityRestaurant = "restaurant"
	EntitySection    = "section"
	EntityItem       = "item"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event is the JSON envelope written to the broker.
type Event struct {
	ID         string            `json:"id"`
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId"`
	Topic      string            `json:"topic"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       interface{}       `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// Publisher delivers events. Callers treat errors as non-fatal.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NewEvent fills the envelope; the topic is "<entity>.<action>".
func NewEvent(entity, action string, resourceID uint, data interface{}) Event {
	return Event{
		Entity:     entity,
		Action:     action,
		ResourceID: fmt.Sprint(resourceID),
		Topic:      entity + "." + action,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	}
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }
