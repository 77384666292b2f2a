package otel

import (
	"context"
	"strconv"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"challenge-hub/backend/internal/telemetry"
)

// NewEventEmitter returns an EventEmitter that sends request events as OTel log records via the given LoggerProvider.
// If provider is nil, returns a no-op emitter.
func NewEventEmitter(provider *sdklog.LoggerProvider) telemetry.EventEmitter {
	if provider == nil {
		return noopEmitter{}
	}
	return &otelEmitter{logger: provider.Logger("challenge-hub.http")}
}

type noopEmitter struct{}

func (noopEmitter) Emit(context.Context, *telemetry.RequestEvent) error { return nil }

type otelEmitter struct {
	logger otellog.Logger
}

// Emit converts the request event to an OTel log record and emits it. Best-effort; errors are logged.
func (e *otelEmitter) Emit(ctx context.Context, event *telemetry.RequestEvent) error {
	if event == nil {
		return nil
	}
	rec := otellog.Record{}
	if !event.OccurredAt.IsZero() {
		rec.SetTimestamp(event.OccurredAt)
	} else {
		rec.SetTimestamp(time.Now().UTC())
	}
	rec.SetBody(otellog.StringValue(event.Method + " " + event.Route + " " + strconv.Itoa(event.Status)))
	if event.Method != "" {
		rec.AddAttributes(otellog.String("http_method", event.Method))
	}
	if event.Route != "" {
		rec.AddAttributes(otellog.String("http_route", event.Route))
	}
	if event.Status != 0 {
		rec.AddAttributes(otellog.Int("http_status", event.Status))
	}
	if event.UserID != "" {
		rec.AddAttributes(otellog.String("user_id", event.UserID))
	}
	if event.Duration > 0 {
		rec.AddAttributes(otellog.Int64("duration_ms", event.Duration.Milliseconds()))
	}
	e.logger.Emit(ctx, rec)
	return nil
}
