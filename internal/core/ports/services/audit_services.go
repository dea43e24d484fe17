package services

import (
	"context"

	"github.com/finbooks/accounting_core/internal/core/domain"
)

// AuditSvc records ledger mutations to the audit trail, fire-and-forget.
// Implementations must never propagate write failures to the caller; a lost
// audit record is less damaging than a lost ledger mutation, but the failure
// must be surfaced via error-tier logging.
type AuditSvc interface {
	// LogAction records an arbitrary action against an entity.
	LogAction(ctx context.Context, action, entityType, entityID string, details any)

	// LogCreate records entity creation with its new value snapshot.
	LogCreate(ctx context.Context, entityType, entityID string, newValue any)

	// LogUpdate records entity mutation with before/after snapshots.
	LogUpdate(ctx context.Context, entityType, entityID string, oldValue, newValue any)

	// LogDelete records entity deletion with its final snapshot.
	LogDelete(ctx context.Context, entityType, entityID string, oldValue any)

	// ListAuditLogs retrieves recent audit records for operators.
	ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error)
}
