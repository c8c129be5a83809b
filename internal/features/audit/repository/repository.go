package repository

import (
	"context"

	"github.com/your-org/prizedraw-backend/internal/features/audit/models"
)

// AuditRepository is append-only storage for audit records.
type AuditRepository interface {
	Insert(ctx context.Context, entry *models.AuditLog) error
	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error)
}
