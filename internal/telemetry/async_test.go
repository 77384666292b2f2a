package telemetry

import (
	"context"
	"sync"
	"testing"
	"time"
)

// mockEventEmitter implements EventEmitter for tests.
type mockEventEmitter struct {
	mu      sync.Mutex
	events  []*RequestEvent
	emitErr error
}

func (m *mockEventEmitter) Emit(ctx context.Context, event *RequestEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.emitErr
}

func (m *mockEventEmitter) getEvents() []*RequestEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events
}

func TestEmitAsync_NilEmitter(t *testing.T) {
	// Should not panic
	EmitAsync(nil, context.Background(), &RequestEvent{Method: "GET", Route: "/healthz"})
}

func TestEmitAsync_NilEvent(t *testing.T) {
	emitter := &mockEventEmitter{}

	EmitAsync(emitter, context.Background(), nil)

	time.Sleep(10 * time.Millisecond)
	if n := len(emitter.getEvents()); n != 0 {
		t.Errorf("expected 0 events, got %d", n)
	}
}

func TestEmitAsync_SuccessfulEmit(t *testing.T) {
	emitter := &mockEventEmitter{}
	event := &RequestEvent{Method: "POST", Route: "/api/v1/participations", Status: 201, UserID: "user-1"}

	EmitAsync(emitter, context.Background(), event)

	time.Sleep(100 * time.Millisecond)
	events := emitter.getEvents()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Route != "/api/v1/participations" || events[0].Status != 201 {
		t.Errorf("event = %+v", events[0])
	}
}

func TestEmitAsync_UsesBackgroundContext(t *testing.T) {
	emitter := &mockEventEmitter{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Should still emit even though the request context is cancelled.
	EmitAsync(emitter, ctx, &RequestEvent{Method: "GET", Route: "/healthz"})

	time.Sleep(100 * time.Millisecond)
	if n := len(emitter.getEvents()); n != 1 {
		t.Errorf("expected 1 event (context.Background used), got %d", n)
	}
}

func TestEmitAsync_ErrorHandling(t *testing.T) {
	emitter := &mockEventEmitter{emitErr: context.DeadlineExceeded}

	// Errors are logged, not surfaced; must not panic.
	EmitAsync(emitter, context.Background(), &RequestEvent{Method: "GET", Route: "/healthz"})

	time.Sleep(100 * time.Millisecond)
}

func TestEmitAsync_ConcurrentAccess(t *testing.T) {
	emitter := &mockEventEmitter{}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			EmitAsync(emitter, context.Background(), &RequestEvent{Method: "GET", Route: "/healthz"})
		}()
	}
	wg.Wait()

	time.Sleep(200 * time.Millisecond)
	if n := len(emitter.getEvents()); n != 10 {
		t.Errorf("expected 10 events, got %d", n)
	}
}
