package models

import "time"

// WinnerKind distinguishes the single primary winner from ranked reserves.
type WinnerKind string

const (
	WinnerKindPrimary WinnerKind = "primary"
	WinnerKindReserve WinnerKind = "reserve"
)

// PrimaryRank is the rank stored for the primary winner. Reserves are ranked
// 1..MaxReserves, so ordering by rank ascending lists the primary first.
const PrimaryRank = 0

// MaxReserves caps how many reserve winners a selection produces.
const MaxReserves = 10

// Winner is one selected entry for a draw. Winners are written exactly once,
// inside the same transaction that completes the draw.
type Winner struct {
	ID        string     `json:"id"`
	DrawID    string     `json:"draw_id"`
	EntryID   string     `json:"entry_id"`
	Kind      WinnerKind `json:"kind"`
	Rank      int        `json:"rank"`
	CreatedAt time.Time  `json:"created_at"`
}

// WinnerDetail is a winner joined with the entry's customer identity,
// used by the winners listing.
type WinnerDetail struct {
	Winner
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}
