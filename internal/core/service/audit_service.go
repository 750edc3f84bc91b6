package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhub/todo-service/internal/api/metrics"
	"github.com/taskhub/todo-service/internal/core/domain"
	"github.com/taskhub/todo-service/internal/core/ports"
)

const defaultAuditQueryLimit = 100

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation that persists
// events to the audit repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit event. Called from dispatcher workers,
// never from the request path.
func (s *auditService) Process(ctx context.Context, in ports.AuditEventInput) error {
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	event := &domain.AuditEvent{
		Actor:     in.Actor,
		Action:    in.Action,
		Subject:   in.Subject,
		Timestamp: ts,
	}

	if err := s.repo.InsertEvent(ctx, event); err != nil {
		metrics.AuditEventsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("process audit event: %w", err)
	}

	metrics.AuditEventsTotal.WithLabelValues("ok").Inc()
	s.log.Debug().Str("actor", in.Actor).Str("action", in.Action).Msg("audit event recorded")
	return nil
}

func (s *auditService) Recent(ctx context.Context, limit int64) ([]domain.AuditEvent, error) {
	if limit <= 0 {
		limit = defaultAuditQueryLimit
	}
	return s.repo.FindRecent(ctx, limit)
}
