package ports

import (
	"context"

	"github.com/lecturehall/lecture-api/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}

// AuditService processes a single audit event end to end.
type AuditService interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditSink is the fire-and-forget side handlers talk to; the dispatcher
// behind it fans events out to workers.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}
