package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/prizedraw-backend/internal/features/audit/models"
	"github.com/your-org/prizedraw-backend/internal/features/audit/repository"
)

// recentLimit caps the audit listing to the newest records.
const recentLimit = 100

// AuditService records and lists audit entries.
type AuditService interface {
	Record(ctx context.Context, action string, details map[string]interface{}, performedBy string) error
	ListRecent(ctx context.Context) ([]models.AuditLog, error)
}

type auditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Record(ctx context.Context, action string, details map[string]interface{}, performedBy string) error {
	if performedBy == "" {
		performedBy = "system"
	}
	entry := &models.AuditLog{
		ID:          uuid.New().String(),
		Action:      action,
		Details:     details,
		PerformedBy: performedBy,
		CreatedAt:   time.Now().UTC(),
	}
	return s.repo.Insert(ctx, entry)
}

func (s *auditService) ListRecent(ctx context.Context) ([]models.AuditLog, error) {
	return s.repo.ListRecent(ctx, recentLimit)
}
