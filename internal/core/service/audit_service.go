package service

import (
	"context"
	"fmt"

	"github.com/lecturehall/lecture-api/internal/core/domain"
	"github.com/lecturehall/lecture-api/internal/core/ports"
)

// AuditService persists audit events delivered by the dispatcher workers.
type AuditService struct {
	repo ports.AuditRepository
}

func NewAuditService(repo ports.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) Record(ctx context.Context, event domain.AuditEvent) error {
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	return nil
}
