package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/accounting_core/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_core/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_core/internal/core/ports/services"
	"github.com/finbooks/accounting_core/internal/middleware"
)

const (
	actionCreate = "CREATE"
	actionUpdate = "UPDATE"
	actionDelete = "DELETE"
)

// auditService writes the audit trail. Writes are fire-and-forget: a failed
// audit insert is logged at error tier and never fails the mutation that
// triggered it.
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogRepository
}

// NewAuditService creates a new audit service.
func NewAuditService(auditRepo portsrepo.AuditLogRepository) portssvc.AuditSvc {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvc = (*auditService)(nil)

// snapshot serializes an entity value for storage. Marshal failures degrade
// to a placeholder rather than dropping the whole record.
func (s *auditService) snapshot(ctx context.Context, value any) string {
	if value == nil {
		return ""
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.LogError(ctx, err, "Failed to marshal audit snapshot")
		return fmt.Sprintf("<unserializable: %T>", value)
	}
	return string(data)
}

func (s *auditService) write(ctx context.Context, log domain.AuditLog) {
	log.AuditID = uuid.NewString()
	log.Actor = middleware.GetActorFromContext(ctx)
	log.Timestamp = time.Now().UTC()

	if err := s.auditRepo.SaveAuditLog(ctx, log); err != nil {
		s.LogError(ctx, err, "Failed to write audit log",
			slog.String("action", log.Action),
			slog.String("entity_type", log.EntityType),
			slog.String("entity_id", log.EntityID))
	}
}

// LogAction records an arbitrary action against an entity.
func (s *auditService) LogAction(ctx context.Context, action, entityType, entityID string, details any) {
	s.write(ctx, domain.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    s.snapshot(ctx, details),
	})
}

// LogCreate records entity creation with its new value snapshot.
func (s *auditService) LogCreate(ctx context.Context, entityType, entityID string, newValue any) {
	s.write(ctx, domain.AuditLog{
		Action:     actionCreate,
		EntityType: entityType,
		EntityID:   entityID,
		NewValue:   s.snapshot(ctx, newValue),
	})
}

// LogUpdate records entity mutation with before/after snapshots.
func (s *auditService) LogUpdate(ctx context.Context, entityType, entityID string, oldValue, newValue any) {
	s.write(ctx, domain.AuditLog{
		Action:     actionUpdate,
		EntityType: entityType,
		EntityID:   entityID,
		OldValue:   s.snapshot(ctx, oldValue),
		NewValue:   s.snapshot(ctx, newValue),
	})
}

// LogDelete records entity deletion with its final snapshot.
func (s *auditService) LogDelete(ctx context.Context, entityType, entityID string, oldValue any) {
	s.write(ctx, domain.AuditLog{
		Action:     actionDelete,
		EntityType: entityType,
		EntityID:   entityID,
		OldValue:   s.snapshot(ctx, oldValue),
	})
}

// ListAuditLogs retrieves recent audit records, newest first.
func (s *auditService) ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	logs, err := s.auditRepo.ListAuditLogs(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit logs")
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, nil
}
