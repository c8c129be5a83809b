package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/prizedraw-backend/internal/common/cache"
	"github.com/your-org/prizedraw-backend/internal/features/draw/models"
	"github.com/your-org/prizedraw-backend/internal/features/draw/repository/memory"
)

// recorderStub captures audit calls for assertions.
type recorderStub struct {
	mu      sync.Mutex
	actions []string
	details []map[string]interface{}
	actors  []string
}

func (r *recorderStub) Record(_ context.Context, action string, details map[string]interface{}, performedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, action)
	r.details = append(r.details, details)
	r.actors = append(r.actors, performedBy)
	return nil
}

func (r *recorderStub) last() (string, map[string]interface{}, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.actions) == 0 {
		return "", nil, ""
	}
	i := len(r.actions) - 1
	return r.actions[i], r.details[i], r.actors[i]
}

func newTestService() (DrawService, *memory.DrawRepository, *recorderStub) {
	repo := memory.NewDrawRepository()
	rec := &recorderStub{}
	svc := NewDrawService(repo, cache.NewCacheService(nil), rec, time.Minute)
	return svc, repo, rec
}

func activeDrawInput() *CreateDrawInput {
	now := time.Now().UTC()
	return &CreateDrawInput{
		Title:            "Luxury Maldives Holiday",
		Description:      "7-night stay for two",
		PrizeDescription: "7-Night Maldives Trip",
		Value:            8500,
		Type:             string(models.PrizeTypeHoliday),
		Status:           string(models.DrawStatusActive),
		StartDate:        now.Add(-time.Hour),
		EndDate:          now.Add(24 * time.Hour),
	}
}

func TestCreateDraw(t *testing.T) {
	svc, repo, rec := newTestService()
	ctx := context.Background()

	draw, err := svc.Create(ctx, activeDrawInput())
	require.NoError(t, err)
	require.NotEmpty(t, draw.ID)
	assert.Equal(t, models.DrawStatusActive, draw.Status)
	assert.Equal(t, models.PrizeTypeHoliday, draw.Type)

	stored, err := repo.GetDraw(ctx, draw.ID)
	require.NoError(t, err)
	assert.Equal(t, draw.Title, stored.Title)

	action, details, actor := rec.last()
	assert.Equal(t, "CREATE_DRAW", action)
	assert.Equal(t, draw.ID, details["id"])
	assert.Equal(t, "admin", actor)
}

func TestCreateDrawDefaultsToDraft(t *testing.T) {
	svc, _, _ := newTestService()

	input := activeDrawInput()
	input.Status = ""
	draw, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, models.DrawStatusDraft, draw.Status)
}

func TestCreateDrawValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	t.Run("missing title", func(t *testing.T) {
		input := activeDrawInput()
		input.Title = ""
		_, err := svc.Create(ctx, input)
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("missing prize description", func(t *testing.T) {
		input := activeDrawInput()
		input.PrizeDescription = ""
		_, err := svc.Create(ctx, input)
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("missing dates", func(t *testing.T) {
		input := activeDrawInput()
		input.StartDate = time.Time{}
		_, err := svc.Create(ctx, input)
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("end before start", func(t *testing.T) {
		input := activeDrawInput()
		input.EndDate = input.StartDate.Add(-time.Hour)
		_, err := svc.Create(ctx, input)
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("completed as initial status", func(t *testing.T) {
		input := activeDrawInput()
		input.Status = string(models.DrawStatusCompleted)
		_, err := svc.Create(ctx, input)
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("unknown prize type", func(t *testing.T) {
		input := activeDrawInput()
		input.Type = "Crypto"
		_, err := svc.Create(ctx, input)
		require.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestUpdateStatus(t *testing.T) {
	svc, repo, rec := newTestService()
	ctx := context.Background()

	input := activeDrawInput()
	input.Status = string(models.DrawStatusDraft)
	draw, err := svc.Create(ctx, input)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, draw.ID, models.DrawStatusActive))

	stored, err := repo.GetDraw(ctx, draw.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DrawStatusActive, stored.Status)

	action, details, _ := rec.last()
	assert.Equal(t, "UPDATE_DRAW_STATUS", action)
	assert.Equal(t, "active", details["status"])

	t.Run("backward transition rejected", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, draw.ID, models.DrawStatusDraft)
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run("completed reserved for selection", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, draw.ID, models.DrawStatusCompleted)
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, draw.ID, models.DrawStatus("published"))
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("unknown draw", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, "missing", models.DrawStatusActive)
		require.ErrorIs(t, err, models.ErrDrawNotFound)
	})
}

// raceRepo delegates to the in-memory repository but runs a hook just
// before the status write, simulating a concurrent operation committing
// between the service's lifecycle check and its update.
type raceRepo struct {
	*memory.DrawRepository
	beforeUpdate func()
}

func (r *raceRepo) UpdateDrawStatus(ctx context.Context, id string, from, to models.DrawStatus) error {
	if r.beforeUpdate != nil {
		r.beforeUpdate()
	}
	return r.DrawRepository.UpdateDrawStatus(ctx, id, from, to)
}

func TestUpdateStatusLosesRaceWithSelection(t *testing.T) {
	ctx := context.Background()
	repo := &raceRepo{DrawRepository: memory.NewDrawRepository()}
	svc := NewDrawService(repo, cache.NewCacheService(nil), &recorderStub{}, time.Minute)

	input := activeDrawInput()
	input.Status = string(models.DrawStatusDraft)
	draw, err := svc.Create(ctx, input)
	require.NoError(t, err)

	// Seed an entry directly; the ledger only accepts submissions for
	// active draws.
	require.NoError(t, repo.CreateEntry(ctx, &models.Entry{
		ID:         "entry-1",
		DrawID:     draw.ID,
		CustomerID: "cust-1",
		EnteredAt:  time.Now().UTC(),
	}))

	// Winner selection completes the draw after UpdateStatus has read it
	// as draft but before it writes the new status.
	repo.beforeUpdate = func() {
		repo.beforeUpdate = nil
		_, err := svc.PickWinners(ctx, draw.ID)
		require.NoError(t, err)
	}

	err = svc.UpdateStatus(ctx, draw.ID, models.DrawStatusActive)
	require.ErrorIs(t, err, models.ErrInvalidTransition)

	stored, err := repo.GetDraw(ctx, draw.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DrawStatusCompleted, stored.Status)

	winners, err := svc.ListWinners(ctx, draw.ID)
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, "entry-1", winners[0].EntryID)
}

func TestListDraws(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, activeDrawInput())
	require.NoError(t, err)

	draft := activeDrawInput()
	draft.Title = "Draft draw"
	draft.Status = string(models.DrawStatusDraft)
	_, err = svc.Create(ctx, draft)
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.List(ctx, models.DrawStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, models.DrawStatusActive, active[0].Status)

	_, err = svc.List(ctx, models.DrawStatus("published"))
	require.ErrorIs(t, err, models.ErrValidation)
}
