package service

import (
	"context"
	"time"
)

// Match event kinds.
const (
	MatchEventCreated = "match.created"
	MatchEventDeleted = "match.deleted"
)

// MatchEvent is published whenever reconciliation creates or deletes a match.
type MatchEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Kind       string    `json:"kind"`
	MatchID    string    `json:"match_id"`
	Users      [2]string `json:"users"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMatchEvent publishes a match lifecycle event for async consumers
	PublishMatchEvent(ctx context.Context, event *MatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
