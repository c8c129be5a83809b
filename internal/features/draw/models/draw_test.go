package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDrawStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to DrawStatus
		want     bool
	}{
		{DrawStatusDraft, DrawStatusActive, true},
		{DrawStatusDraft, DrawStatusCompleted, true},
		{DrawStatusActive, DrawStatusCompleted, true},
		{DrawStatusActive, DrawStatusDraft, false},
		{DrawStatusCompleted, DrawStatusActive, false},
		{DrawStatusCompleted, DrawStatusDraft, false},
		{DrawStatusDraft, DrawStatusDraft, false},
		{DrawStatusActive, DrawStatusActive, false},
		{DrawStatusCompleted, DrawStatusCompleted, false},
		{DrawStatus("published"), DrawStatusActive, false},
		{DrawStatusActive, DrawStatus("published"), false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestDrawStatusValid(t *testing.T) {
	assert.True(t, DrawStatusDraft.Valid())
	assert.True(t, DrawStatusActive.Valid())
	assert.True(t, DrawStatusCompleted.Valid())
	assert.False(t, DrawStatus("published").Valid())
	assert.False(t, DrawStatus("").Valid())
}

func TestPrizeTypeValid(t *testing.T) {
	for _, pt := range []PrizeType{PrizeTypeCash, PrizeTypeHoliday, PrizeTypeVoucher, PrizeTypePhysical, PrizeTypeExperience} {
		assert.True(t, pt.Valid(), string(pt))
	}
	assert.False(t, PrizeType("Crypto").Valid())
}

func TestDrawAcceptingEntries(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)

	draw := &Draw{Status: DrawStatusActive, StartDate: start, EndDate: end}

	assert.True(t, draw.AcceptingEntries(start), "start boundary is inclusive")
	assert.True(t, draw.AcceptingEntries(end), "end boundary is inclusive")
	assert.True(t, draw.AcceptingEntries(start.AddDate(0, 0, 14)))
	assert.False(t, draw.AcceptingEntries(start.Add(-time.Second)), "before the window")
	assert.False(t, draw.AcceptingEntries(end.Add(time.Second)), "after the window")

	draft := &Draw{Status: DrawStatusDraft, StartDate: start, EndDate: end}
	assert.False(t, draft.AcceptingEntries(start.AddDate(0, 0, 14)), "draft never accepts")

	completed := &Draw{Status: DrawStatusCompleted, StartDate: start, EndDate: end}
	assert.False(t, completed.AcceptingEntries(start.AddDate(0, 0, 14)), "completed never accepts")
}
