package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/prizedraw-backend/internal/common/logger"
	"github.com/your-org/prizedraw-backend/internal/features/draw/models"
	"github.com/your-org/prizedraw-backend/internal/utils/random"
)

// selectionMethod names the algorithm in the audit trail.
const selectionMethod = "Fisher-Yates Shuffle (Crypto Secure)"

// PickWinners selects one primary winner and up to ten ranked reserves for a
// draw. The entry pool is shuffled with a cryptographically secure
// Fisher-Yates permutation, so every ordering is equally likely and the
// outcome cannot be reproduced from a seed. Winner rows and the move to
// completed are committed as one unit by the repository; when two selections
// race, exactly one succeeds and the other gets models.ErrAlreadyCompleted.
func (s *drawService) PickWinners(ctx context.Context, drawID string) (*SelectionResult, error) {
	draw, err := s.repo.GetDraw(ctx, drawID)
	if err != nil {
		return nil, err
	}
	if draw.Status == models.DrawStatusCompleted {
		return nil, models.ErrAlreadyCompleted
	}

	pool, err := s.repo.ListEntryIDs(ctx, drawID)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, models.ErrEmptyPool
	}

	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	if err := random.Shuffle(shuffled); err != nil {
		return nil, fmt.Errorf("shuffle entries: %w", err)
	}

	reserveCount := len(shuffled) - 1
	if reserveCount > models.MaxReserves {
		reserveCount = models.MaxReserves
	}

	now := time.Now().UTC()
	winners := make([]models.Winner, 0, 1+reserveCount)
	winners = append(winners, models.Winner{
		ID:        uuid.New().String(),
		DrawID:    drawID,
		EntryID:   shuffled[0],
		Kind:      models.WinnerKindPrimary,
		Rank:      models.PrimaryRank,
		CreatedAt: now,
	})
	for i := 1; i <= reserveCount; i++ {
		winners = append(winners, models.Winner{
			ID:        uuid.New().String(),
			DrawID:    drawID,
			EntryID:   shuffled[i],
			Kind:      models.WinnerKindReserve,
			Rank:      i,
			CreatedAt: now,
		})
	}

	if err := s.repo.CompleteDrawWithWinners(ctx, drawID, winners); err != nil {
		return nil, err
	}

	s.invalidate(ctx, drawID)
	s.record(ctx, actionPickWinners, map[string]interface{}{
		"draw_id":      drawID,
		"winner_count": len(winners),
		"pool_size":    len(pool),
		"method":       selectionMethod,
		"timestamp":    now.Format(time.RFC3339),
	}, actorSystem)

	logger.Info().
		Str("draw_id", drawID).
		Int("winner_count", len(winners)).
		Int("pool_size", len(pool)).
		Msg("Winners selected")

	return &SelectionResult{
		PrimaryEntryID: shuffled[0],
		ReserveCount:   reserveCount,
		PoolSize:       len(pool),
	}, nil
}

func (s *drawService) ListWinners(ctx context.Context, drawID string) ([]models.WinnerDetail, error) {
	var winners []models.WinnerDetail
	cacheKey := fmt.Sprintf("draw_winners:%s", drawID)

	err := s.cache.GetOrSet(ctx, cacheKey, &winners, s.drawTTL, func() (interface{}, error) {
		return s.repo.ListWinners(ctx, drawID)
	})
	if err != nil {
		return nil, err
	}
	return winners, nil
}
