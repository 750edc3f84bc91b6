package ports

import (
	"context"

	"github.com/taskhub/todo-service/internal/core/domain"
)

// AuditRepository persists audit events to an append-only collection.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuditEvent) error

	// FindRecent returns the most recent events, newest first.
	FindRecent(ctx context.Context, limit int64) ([]domain.AuditEvent, error)
}
