// Package telemetry emits per-request events for observability backends.
package telemetry

import (
	"context"
	"time"
)

// RequestEvent describes one handled HTTP request.
type RequestEvent struct {
	Method     string
	Route      string
	Status     int
	UserID     string
	Duration   time.Duration
	OccurredAt time.Time
}

// EventEmitter emits request events (e.g. to OTel Logs). Best-effort; callers log and ignore errors.
type EventEmitter interface {
	Emit(ctx context.Context, event *RequestEvent) error
}
