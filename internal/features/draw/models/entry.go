package models

import "time"

// Entry is one customer's registration of interest in a draw. The pair
// (DrawID, CustomerID) is unique: a customer holds at most one entry per draw.
type Entry struct {
	ID            string    `json:"id"`
	DrawID        string    `json:"draw_id"`
	CustomerID    string    `json:"customer_id"`
	CustomerEmail string    `json:"customer_email"`
	CustomerName  string    `json:"customer_name"`
	EnteredAt     time.Time `json:"entered_at"`
}
