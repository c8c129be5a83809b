package service

import (
	"context"
	"time"

	"github.com/your-org/prizedraw-backend/internal/features/draw/models"
)

// CreateDrawInput carries the fields for creating a draw. Status defaults to
// draft when empty; only draft and active are accepted as initial states.
type CreateDrawInput struct {
	Title               string
	Description         string
	PrizeDescription    string
	Value               float64
	Type                string
	Status              string
	EligibilityCriteria string
	StartDate           time.Time
	EndDate             time.Time
}

// SubmitEntryInput carries one customer's entry into a draw. Identity is
// supplied and trusted by the caller.
type SubmitEntryInput struct {
	DrawID        string
	CustomerID    string
	CustomerEmail string
	CustomerName  string
}

// SelectionResult summarizes a successful winner selection.
type SelectionResult struct {
	PrimaryEntryID string `json:"primary_winner_entry_id"`
	ReserveCount   int    `json:"reserve_count"`
	PoolSize       int    `json:"pool_size"`
}

// DrawService is the application surface for the draw lifecycle, the entry
// ledger and winner selection.
type DrawService interface {
	Create(ctx context.Context, input *CreateDrawInput) (*models.Draw, error)
	GetByID(ctx context.Context, id string) (*models.Draw, error)
	List(ctx context.Context, status models.DrawStatus) ([]models.DrawWithEntryCount, error)
	UpdateStatus(ctx context.Context, id string, status models.DrawStatus) error

	SubmitEntry(ctx context.Context, input *SubmitEntryInput) (*models.Entry, error)
	ListEntries(ctx context.Context, drawID string) ([]models.Entry, error)

	PickWinners(ctx context.Context, drawID string) (*SelectionResult, error)
	ListWinners(ctx context.Context, drawID string) ([]models.WinnerDetail, error)
}

// AuditRecorder appends one immutable audit record. Implementations live in
// the audit feature; the draw service treats failures as best-effort and
// never rolls back a business operation over them.
type AuditRecorder interface {
	Record(ctx context.Context, action string, details map[string]interface{}, performedBy string) error
}
