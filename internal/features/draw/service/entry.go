package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/prizedraw-backend/internal/features/draw/models"
)

// SubmitEntry records one customer's entry into a draw. The draw must be
// active and inside its date window; the repository's uniqueness constraint
// turns a repeat submission into models.ErrDuplicateEntry.
func (s *drawService) SubmitEntry(ctx context.Context, input *SubmitEntryInput) (*models.Entry, error) {
	if input.DrawID == "" {
		return nil, fmt.Errorf("%w: draw_id is required", models.ErrValidation)
	}
	if input.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer_id is required", models.ErrValidation)
	}

	draw, err := s.repo.GetDraw(ctx, input.DrawID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if !draw.AcceptingEntries(now) {
		return nil, models.ErrDrawNotAcceptingEntries
	}

	entry := &models.Entry{
		ID:            uuid.New().String(),
		DrawID:        draw.ID,
		CustomerID:    input.CustomerID,
		CustomerEmail: input.CustomerEmail,
		CustomerName:  input.CustomerName,
		EnteredAt:     now,
	}

	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidate(ctx, draw.ID)

	return entry, nil
}

func (s *drawService) ListEntries(ctx context.Context, drawID string) ([]models.Entry, error) {
	var entries []models.Entry
	cacheKey := fmt.Sprintf("draw_entries:%s", drawID)

	err := s.cache.GetOrSet(ctx, cacheKey, &entries, s.drawTTL, func() (interface{}, error) {
		return s.repo.ListEntries(ctx, drawID)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
