package entity

import "time"

// Log action types. Every quantity-affecting or metadata-affecting event writes
// exactly one entry with one of these.
const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionArchived = "archived"
	ActionRestored = "restored"
	ActionStockIn  = "stock_in"
	ActionStockOut = "stock_out"
)

// InventoryLog is an append-only audit record of an inventory event.
// Immutable after insert. InventoryID is empty when the item row was removed
// by an operator directly in the database; ItemName snapshots the name at event time.
type InventoryLog struct {
	ID               string
	InventoryID      string
	ActionType       string
	ItemName         string
	PreviousQuantity int
	NewQuantity      int
	QuantityChange   int // signed: positive stock_in, negative stock_out
	Notes            string
	CreatedAt        time.Time
}
