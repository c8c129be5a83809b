package models

import "time"

// AuditLog is one immutable record of a state-changing action. Details is an
// action-specific payload, serialized as JSON text for storage. Records are
// never updated or deleted.
type AuditLog struct {
	ID          string                 `json:"id"`
	Action      string                 `json:"action"`
	Details     map[string]interface{} `json:"details,omitempty"`
	PerformedBy string                 `json:"performed_by"`
	CreatedAt   time.Time              `json:"timestamp"`
}
