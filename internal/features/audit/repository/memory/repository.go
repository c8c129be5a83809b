package memory

import (
	"context"
	"sync"

	"github.com/your-org/prizedraw-backend/internal/features/audit/models"
)

// AuditRepository is an in-memory append-only audit store used by tests.
type AuditRepository struct {
	mu      sync.RWMutex
	entries []models.AuditLog
}

func NewAuditRepository() *AuditRepository { return &AuditRepository{} }

func (r *AuditRepository) Insert(_ context.Context, entry *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *AuditRepository) ListRecent(_ context.Context, limit int) ([]models.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 {
		limit = 100
	}

	out := make([]models.AuditLog, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}
