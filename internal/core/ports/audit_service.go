package ports

import (
	"context"
	"time"

	"github.com/taskhub/todo-service/internal/core/domain"
)

// AuditEventInput is the DTO handed from handlers to the audit dispatcher.
type AuditEventInput struct {
	Actor     string
	Action    string
	Subject   string
	Timestamp time.Time
}

// AuditService processes queued audit events and serves queries over them.
type AuditService interface {
	Process(ctx context.Context, event AuditEventInput) error
	Recent(ctx context.Context, limit int64) ([]domain.AuditEvent, error)
}
