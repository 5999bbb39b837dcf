// Package events publishes domain events to a message broker.
package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ActionEvent is emitted after an invitation or request changes state.
type ActionEvent struct {
	ActionID  uuid.UUID `json:"action_id"`
	UserID    uuid.UUID `json:"user_id"`
	CompanyID uuid.UUID `json:"company_id"`
	Kind      string    `json:"kind"`
	State     string    `json:"state"`
	ActorID   uuid.UUID `json:"actor_id"`
	At        time.Time `json:"at"`
}

// RoutingKey is action.<kind>.<state>.
func (e ActionEvent) RoutingKey() string {
	return "action." + e.Kind + "." + e.State
}

// QuizSubmittedEvent is emitted after a scored submission is stored.
type QuizSubmittedEvent struct {
	QuizID       uuid.UUID `json:"quiz_id"`
	CompanyID    uuid.UUID `json:"company_id"`
	UserID       uuid.UUID `json:"user_id"`
	CorrectCount int       `json:"correct_count"`
	TotalCount   int       `json:"total_count"`
	At           time.Time `json:"at"`
}

func (QuizSubmittedEvent) RoutingKey() string { return "quiz.submitted" }

// Event is anything with a routing key that marshals to JSON.
type Event interface {
	RoutingKey() string
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoOpPublisher drops events. Used when no broker is configured.
type NoOpPublisher struct{}

func (NoOpPublisher) Publish(ctx context.Context, event Event) error {
	slog.DebugContext(ctx, "event dropped, no broker configured", "routing_key", event.RoutingKey())
	return nil
}

func (NoOpPublisher) Close() error { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Publish(_ context.Context, event Event) error {
	r.Events = append(r.Events, event)
	return nil
}

func (r *Recorder) Close() error { return nil }
