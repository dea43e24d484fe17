package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbooks/accounting_core/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_core/internal/core/ports/repositories"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

// newPgxAuditLogRepository creates a new repository for audit trail data.
func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepository {
	return &PgxAuditLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditLogRepository = (*PgxAuditLogRepository)(nil)

// SaveAuditLog persists a single audit record.
func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, log domain.AuditLog) error {
	query := `
		INSERT INTO audit_logs (audit_id, action, entity_type, entity_id, actor, occurred_at, details, old_value, new_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		log.AuditID,
		log.Action,
		log.EntityType,
		log.EntityID,
		log.Actor,
		log.Timestamp,
		nullIfEmpty(log.Details),
		nullIfEmpty(log.OldValue),
		nullIfEmpty(log.NewValue),
	)
	if err != nil {
		return fmt.Errorf("failed to save audit log %s: %w", log.AuditID, err)
	}
	return nil
}

// ListAuditLogs retrieves recent audit records, newest first.
func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	query := `
		SELECT audit_id, action, entity_type, entity_id, actor, occurred_at, details, old_value, new_value
		FROM audit_logs
		ORDER BY occurred_at DESC, audit_id DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.AuditLog{}
	for rows.Next() {
		var log domain.AuditLog
		var details, oldValue, newValue sql.NullString
		if err := rows.Scan(
			&log.AuditID,
			&log.Action,
			&log.EntityType,
			&log.EntityID,
			&log.Actor,
			&log.Timestamp,
			&details,
			&oldValue,
			&newValue,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit log row: %w", err)
		}
		log.Details = details.String
		log.OldValue = oldValue.String
		log.NewValue = newValue.String
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log rows: %w", err)
	}
	return logs, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
