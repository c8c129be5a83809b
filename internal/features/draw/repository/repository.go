package repository

import (
	"context"

	"github.com/your-org/prizedraw-backend/internal/features/draw/models"
)

// DrawRepository defines persistence operations for draws and their owned
// entries and winners. It is the only write path to that state; callers own
// the open/close lifecycle of the backing store.
type DrawRepository interface {
	CreateDraw(ctx context.Context, d *models.Draw) error
	// GetDraw returns models.ErrDrawNotFound when the id is unknown.
	GetDraw(ctx context.Context, id string) (*models.Draw, error)
	// ListDraws returns draws with entry counts, newest first. An empty
	// status lists all draws.
	ListDraws(ctx context.Context, status models.DrawStatus) ([]models.DrawWithEntryCount, error)
	// UpdateDrawStatus moves a draw from one status to another as a
	// compare-and-set: the write only lands while the draw still has the
	// expected current status. When the draw has moved on concurrently
	// (for example a selection completed it) the result is
	// models.ErrInvalidTransition; an unknown id is models.ErrDrawNotFound.
	UpdateDrawStatus(ctx context.Context, id string, from, to models.DrawStatus) error

	// CreateEntry returns models.ErrDuplicateEntry when the customer already
	// holds an entry for the draw. The uniqueness check and the insert are a
	// single unit: two concurrent submissions cannot both succeed.
	CreateEntry(ctx context.Context, e *models.Entry) error
	// ListEntries returns all entries for a draw, newest first.
	ListEntries(ctx context.Context, drawID string) ([]models.Entry, error)
	// ListEntryIDs returns the ids of every entry in the draw's pool.
	ListEntryIDs(ctx context.Context, drawID string) ([]string, error)

	// CompleteDrawWithWinners atomically moves the draw to completed and
	// inserts the winner rows. The status move is conditional on the draw not
	// already being completed; when that condition fails no winner row is
	// written and models.ErrAlreadyCompleted is returned. Exactly one of two
	// racing callers succeeds.
	CompleteDrawWithWinners(ctx context.Context, drawID string, winners []models.Winner) error
	// ListWinners returns winners joined with entry identity, rank ascending.
	ListWinners(ctx context.Context, drawID string) ([]models.WinnerDetail, error)
}
