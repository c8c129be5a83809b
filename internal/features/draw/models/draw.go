package models

import "time"

// DrawStatus represents the lifecycle state of a prize draw.
type DrawStatus string

const (
	DrawStatusDraft     DrawStatus = "draft"     // Created, not yet open for entries
	DrawStatusActive    DrawStatus = "active"    // Open for entries within the date window
	DrawStatusCompleted DrawStatus = "completed" // Winners selected; terminal
)

// Valid reports whether s is a known status.
func (s DrawStatus) Valid() bool {
	switch s {
	case DrawStatusDraft, DrawStatusActive, DrawStatusCompleted:
		return true
	}
	return false
}

// statusOrder encodes the forward-only lifecycle draft -> active -> completed.
var statusOrder = map[DrawStatus]int{
	DrawStatusDraft:     0,
	DrawStatusActive:    1,
	DrawStatusCompleted: 2,
}

// CanTransitionTo reports whether moving from s to next is a legal forward
// step. Completed is terminal and self-transitions are rejected.
func (s DrawStatus) CanTransitionTo(next DrawStatus) bool {
	from, ok := statusOrder[s]
	if !ok {
		return false
	}
	to, ok := statusOrder[next]
	if !ok {
		return false
	}
	return to > from
}

// PrizeType enumerates the kinds of prizes a draw can offer.
type PrizeType string

const (
	PrizeTypeCash       PrizeType = "Cash"
	PrizeTypeHoliday    PrizeType = "Holiday"
	PrizeTypeVoucher    PrizeType = "Voucher"
	PrizeTypePhysical   PrizeType = "Physical Item"
	PrizeTypeExperience PrizeType = "Experience"
)

func (t PrizeType) Valid() bool {
	switch t {
	case PrizeTypeCash, PrizeTypeHoliday, PrizeTypeVoucher, PrizeTypePhysical, PrizeTypeExperience:
		return true
	}
	return false
}

// Draw represents one promotional prize draw campaign.
type Draw struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	PrizeDescription    string     `json:"prize_description"`
	Value               float64    `json:"value"`
	Type                PrizeType  `json:"type,omitempty"`
	Status              DrawStatus `json:"status"`
	EligibilityCriteria string     `json:"eligibility_criteria,omitempty"`
	StartDate           time.Time  `json:"start_date"`
	EndDate             time.Time  `json:"end_date"`
	CreatedAt           time.Time  `json:"created_at"`
}

// AcceptingEntries reports whether the draw takes entries at the given
// moment: it must be active and now must fall within [start_date, end_date].
// Both boundaries are inclusive.
func (d *Draw) AcceptingEntries(now time.Time) bool {
	if d.Status != DrawStatusActive {
		return false
	}
	if now.Before(d.StartDate) {
		return false
	}
	return !now.After(d.EndDate)
}

// DrawWithEntryCount is a draw joined with its current number of entries,
// used by the listing endpoint.
type DrawWithEntryCount struct {
	Draw
	EntriesCount int64 `json:"entries_count"`
}
