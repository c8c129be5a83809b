package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/your-org/prizedraw-backend/internal/features/draw/models"
)

// DrawRepository is an in-memory implementation of the draw repository,
// used by tests. All mutations are guarded by a single mutex, so the
// conditional complete-with-winners operation has the same all-or-nothing
// race semantics as the SQL implementation.
type DrawRepository struct {
	mu      sync.RWMutex
	draws   map[string]models.Draw
	entries map[string][]models.Entry // keyed by draw id, insertion order
	winners map[string][]models.Winner
}

func NewDrawRepository() *DrawRepository {
	return &DrawRepository{
		draws:   make(map[string]models.Draw),
		entries: make(map[string][]models.Entry),
		winners: make(map[string][]models.Winner),
	}
}

func (r *DrawRepository) CreateDraw(_ context.Context, d *models.Draw) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draws[d.ID] = *d
	return nil
}

func (r *DrawRepository) GetDraw(_ context.Context, id string) (*models.Draw, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.draws[id]
	if !ok {
		return nil, models.ErrDrawNotFound
	}
	return &d, nil
}

func (r *DrawRepository) ListDraws(_ context.Context, status models.DrawStatus) ([]models.DrawWithEntryCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.DrawWithEntryCount, 0)
	for _, d := range r.draws {
		if status != "" && d.Status != status {
			continue
		}
		out = append(out, models.DrawWithEntryCount{
			Draw:         d,
			EntriesCount: int64(len(r.entries[d.ID])),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateDrawStatus applies the same compare-and-set semantics as the SQL
// implementation: the write lands only while the draw still has the expected
// current status.
func (r *DrawRepository) UpdateDrawStatus(_ context.Context, id string, from, to models.DrawStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.draws[id]
	if !ok {
		return models.ErrDrawNotFound
	}
	if d.Status != from {
		return fmt.Errorf("%w: draw status is %s, not %s", models.ErrInvalidTransition, d.Status, from)
	}
	d.Status = to
	r.draws[id] = d
	return nil
}

func (r *DrawRepository) CreateEntry(_ context.Context, e *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.entries[e.DrawID] {
		if existing.CustomerID == e.CustomerID {
			return models.ErrDuplicateEntry
		}
	}
	r.entries[e.DrawID] = append(r.entries[e.DrawID], *e)
	return nil
}

func (r *DrawRepository) ListEntries(_ context.Context, drawID string) ([]models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.entries[drawID]
	out := make([]models.Entry, len(stored))
	copy(out, stored)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EnteredAt.After(out[j].EnteredAt)
	})
	return out, nil
}

func (r *DrawRepository) ListEntryIDs(_ context.Context, drawID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.entries[drawID]))
	for _, e := range r.entries[drawID] {
		ids = append(ids, e.ID)
	}
	return ids, nil
}

func (r *DrawRepository) CompleteDrawWithWinners(_ context.Context, drawID string, winners []models.Winner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.draws[drawID]
	if !ok {
		return models.ErrDrawNotFound
	}
	if d.Status == models.DrawStatusCompleted {
		return models.ErrAlreadyCompleted
	}
	d.Status = models.DrawStatusCompleted
	r.draws[drawID] = d
	r.winners[drawID] = append([]models.Winner(nil), winners...)
	return nil
}

func (r *DrawRepository) ListWinners(_ context.Context, drawID string) ([]models.WinnerDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byEntryID := make(map[string]models.Entry)
	for _, e := range r.entries[drawID] {
		byEntryID[e.ID] = e
	}

	out := make([]models.WinnerDetail, 0, len(r.winners[drawID]))
	for _, w := range r.winners[drawID] {
		e := byEntryID[w.EntryID]
		out = append(out, models.WinnerDetail{
			Winner:        w,
			CustomerName:  e.CustomerName,
			CustomerEmail: e.CustomerEmail,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}
