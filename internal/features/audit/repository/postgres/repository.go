package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/your-org/prizedraw-backend/internal/features/audit/models"
)

// AuditRepository persists audit records in PostgreSQL.
type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Insert(ctx context.Context, entry *models.AuditLog) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}

	const q = `INSERT INTO audit_logs (id, action, details, performed_by, created_at) VALUES ($1,$2,$3,$4,$5)`
	if _, err := r.db.ExecContext(ctx, q, entry.ID, entry.Action, string(details), entry.PerformedBy, entry.CreatedAt); err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	const q = `
        SELECT id, action, details, performed_by, created_at
        FROM audit_logs ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.AuditLog, 0)
	for rows.Next() {
		var (
			entry   models.AuditLog
			details string
		)
		if err := rows.Scan(&entry.ID, &entry.Action, &details, &entry.PerformedBy, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if details != "" {
			if err := json.Unmarshal([]byte(details), &entry.Details); err != nil {
				return nil, fmt.Errorf("unmarshal audit details: %w", err)
			}
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}
