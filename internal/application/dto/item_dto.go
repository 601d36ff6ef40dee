package dto

import "time"

// SaveItemRequest body for POST /api/items and PUT /api/items/:id.
type SaveItemRequest struct {
	Name         string `json:"item_name"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	Unit         string `json:"unit"`
	MinimumStock int    `json:"minimum_stock"`
	Location     string `json:"location,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// ArchiveItemRequest body for POST /api/items/:id/archive.
type ArchiveItemRequest struct {
	Archived bool `json:"archived"`
}

// AdjustStockRequest body for POST /api/items/:id/adjust.
type AdjustStockRequest struct {
	Direction string `json:"direction"` // "in" | "out"
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// ItemResponse inventory item as returned by the API.
type ItemResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"item_name"`
	Category     string    `json:"category"`
	Quantity     int       `json:"quantity"`
	Unit         string    `json:"unit"`
	MinimumStock int       `json:"minimum_stock"`
	Location     string    `json:"location,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	IsArchived   bool      `json:"is_archived"`
	StockStatus  string    `json:"stock_status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LogResponse audit log entry as returned by the API.
type LogResponse struct {
	ID               string    `json:"id"`
	InventoryID      string    `json:"inventory_id,omitempty"`
	ActionType       string    `json:"action_type"`
	ItemName         string    `json:"item_name"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	QuantityChange   int       `json:"quantity_change"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// AdjustmentResponse result of a direct adjustment: the authoritative new item
// state plus the log entry written in the same transaction.
type AdjustmentResponse struct {
	Item ItemResponse `json:"item"`
	Log  LogResponse  `json:"log"`
}
