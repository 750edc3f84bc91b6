package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhub/todo-service/internal/core/domain"
	"github.com/taskhub/todo-service/internal/core/ports"
)

type recordingAuditService struct {
	mu     sync.Mutex
	events []ports.AuditEventInput
	done   chan struct{}
}

func (s *recordingAuditService) Process(_ context.Context, event ports.AuditEventInput) error {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func (s *recordingAuditService) Recent(_ context.Context, _ int64) ([]domain.AuditEvent, error) {
	return nil, nil
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	svc := &recordingAuditService{done: make(chan struct{}, 16)}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.AuditEventInput{Actor: "alice", Action: domain.AuditUserLogin})
	d.Enqueue(ports.AuditEventInput{Actor: "bob", Action: domain.AuditTodoCreated})

	for i := 0; i < 2; i++ {
		select {
		case <-svc.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.events) != 2 {
		t.Fatalf("expected 2 processed events, got %d", len(svc.events))
	}
}

func TestDispatcher_SameActorSameWorker(t *testing.T) {
	d := NewDispatcher(8, &recordingAuditService{done: make(chan struct{}, 1)}, zerolog.Nop())

	first := d.shardIndex("alice")
	for i := 0; i < 10; i++ {
		if d.shardIndex("alice") != first {
			t.Fatalf("shard index for the same actor must be stable")
		}
	}
}
