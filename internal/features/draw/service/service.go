package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/prizedraw-backend/internal/common/cache"
	"github.com/your-org/prizedraw-backend/internal/common/logger"
	"github.com/your-org/prizedraw-backend/internal/features/draw/models"
	"github.com/your-org/prizedraw-backend/internal/features/draw/repository"
)

const (
	actionCreateDraw       = "CREATE_DRAW"
	actionUpdateDrawStatus = "UPDATE_DRAW_STATUS"
	actionPickWinners      = "PICK_WINNERS"

	actorAdmin  = "admin"
	actorSystem = "system"
)

type drawService struct {
	repo    repository.DrawRepository
	cache   *cache.CacheService
	audit   AuditRecorder
	drawTTL time.Duration
}

func NewDrawService(repo repository.DrawRepository, cache *cache.CacheService, audit AuditRecorder, drawTTL time.Duration) DrawService {
	return &drawService{
		repo:    repo,
		cache:   cache,
		audit:   audit,
		drawTTL: drawTTL,
	}
}

func (s *drawService) Create(ctx context.Context, input *CreateDrawInput) (*models.Draw, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	if input.PrizeDescription == "" {
		return nil, fmt.Errorf("%w: prize_description is required", models.ErrValidation)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date and end_date are required", models.ErrValidation)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not precede start_date", models.ErrValidation)
	}

	status := models.DrawStatus(input.Status)
	if status == "" {
		status = models.DrawStatusDraft
	}
	if status != models.DrawStatusDraft && status != models.DrawStatusActive {
		return nil, fmt.Errorf("%w: initial status must be draft or active", models.ErrValidation)
	}

	prizeType := models.PrizeType(input.Type)
	if prizeType != "" && !prizeType.Valid() {
		return nil, fmt.Errorf("%w: unknown prize type %q", models.ErrValidation, input.Type)
	}

	draw := &models.Draw{
		ID:                  uuid.New().String(),
		Title:               input.Title,
		Description:         input.Description,
		PrizeDescription:    input.PrizeDescription,
		Value:               input.Value,
		Type:                prizeType,
		Status:              status,
		EligibilityCriteria: input.EligibilityCriteria,
		StartDate:           input.StartDate,
		EndDate:             input.EndDate,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.repo.CreateDraw(ctx, draw); err != nil {
		return nil, err
	}

	s.invalidate(ctx, draw.ID)
	s.record(ctx, actionCreateDraw, map[string]interface{}{
		"id":    draw.ID,
		"title": draw.Title,
	}, actorAdmin)

	return draw, nil
}

func (s *drawService) GetByID(ctx context.Context, id string) (*models.Draw, error) {
	var draw models.Draw
	cacheKey := fmt.Sprintf("draw:%s", id)

	err := s.cache.GetOrSet(ctx, cacheKey, &draw, s.drawTTL, func() (interface{}, error) {
		return s.repo.GetDraw(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &draw, nil
}

func (s *drawService) List(ctx context.Context, status models.DrawStatus) ([]models.DrawWithEntryCount, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrValidation, status)
	}

	var draws []models.DrawWithEntryCount
	cacheKey := fmt.Sprintf("draws:%s", status)

	err := s.cache.GetOrSet(ctx, cacheKey, &draws, s.drawTTL, func() (interface{}, error) {
		return s.repo.ListDraws(ctx, status)
	})
	if err != nil {
		return nil, err
	}
	return draws, nil
}

// UpdateStatus applies an administrative forward-only status change. Moving
// to completed is reserved for winner selection and rejected here.
func (s *drawService) UpdateStatus(ctx context.Context, id string, status models.DrawStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", models.ErrValidation, status)
	}

	draw, err := s.repo.GetDraw(ctx, id)
	if err != nil {
		return err
	}

	if status == models.DrawStatusCompleted {
		return fmt.Errorf("%w: a draw is completed by winner selection", models.ErrInvalidTransition)
	}
	if !draw.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, draw.Status, status)
	}

	// Conditional on the status we validated against, so a selection that
	// completes the draw in between cannot be overwritten.
	if err := s.repo.UpdateDrawStatus(ctx, id, draw.Status, status); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.record(ctx, actionUpdateDrawStatus, map[string]interface{}{
		"id":     id,
		"status": string(status),
	}, actorAdmin)

	return nil
}

func (s *drawService) invalidate(ctx context.Context, drawID string) {
	if err := s.cache.InvalidateDrawCache(ctx, drawID); err != nil {
		logger.Warn().Err(err).Str("draw_id", drawID).Msg("Failed to invalidate draw cache")
	}
}

// record writes an audit entry. Audit durability is best-effort: a failed
// write is logged and never fails the business operation that triggered it.
func (s *drawService) record(ctx context.Context, action string, details map[string]interface{}, performedBy string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, action, details, performedBy); err != nil {
		logger.Error().Err(err).Str("action", action).Msg("Failed to write audit log")
	}
}
