package repositories

import (
	"context"

	"github.com/finbooks/accounting_core/internal/core/domain"
)

// AuditLogRepository persists the audit trail.
type AuditLogRepository interface {
	// SaveAuditLog persists a single audit record.
	SaveAuditLog(ctx context.Context, log domain.AuditLog) error

	// ListAuditLogs retrieves recent audit records, newest first.
	ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error)
}
