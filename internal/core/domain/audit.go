package domain

import "time"

// AuditLog records a single ledger mutation for the audit trail.
// Old/new values are JSON snapshots of the affected entity.
type AuditLog struct {
	AuditID    string    `json:"auditID"` // Primary key (UUID)
	Action     string    `json:"action"`  // e.g. CREATE, POST_JOURNAL_ENTRY
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityID"`
	Actor      string    `json:"actor"`
	Timestamp  time.Time `json:"timestamp"`
	Details    string    `json:"details,omitempty"`
	OldValue   string    `json:"oldValue,omitempty"`
	NewValue   string    `json:"newValue,omitempty"`
}
