package entity

import "time"

// Stock-out request states. pending is initial; approved and denied are terminal.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestDenied   = "denied"
)

// StockoutRequest is a staff-initiated withdrawal proposal. It reserves nothing:
// the availability check at submission is advisory and approval re-validates
// against the current quantity.
type StockoutRequest struct {
	ID            string
	InventoryID   string
	RequestedBy   string
	Quantity      int
	Notes         string
	Status        string
	ApprovedBy    string
	DecisionNotes string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Resolved reports whether the request reached a terminal state.
func (r *StockoutRequest) Resolved() bool {
	return r.Status != RequestPending
}
