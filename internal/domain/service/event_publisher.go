package service

import (
	"context"
	"time"
)

// AccessEventMessage is the payload published for every access outcome
type AccessEventMessage struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventID     string    `json:"event_id"`
	GuestID     string    `json:"guest_id,omitempty"` // Empty for token_invalid
	Type        string    `json:"type"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccessEvent publishes an access event for async processing
	PublishAccessEvent(ctx context.Context, event *AccessEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
