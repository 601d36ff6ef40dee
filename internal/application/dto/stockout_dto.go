package dto

import "time"

// SubmitStockoutRequest body for POST /api/stockout/requests.
type SubmitStockoutRequest struct {
	InventoryID string `json:"inventory_id"`
	Quantity    int    `json:"quantity"`
	Notes       string `json:"notes,omitempty"`
}

// DecisionRequest body for approve/deny.
type DecisionRequest struct {
	DecisionNotes string `json:"decision_notes,omitempty"`
}

// StockoutRequestResponse a stock-out request as returned by the API.
// ItemName/Unit snapshot the referenced item for display.
type StockoutRequestResponse struct {
	ID            string    `json:"id"`
	InventoryID   string    `json:"inventory_id"`
	RequestedBy   string    `json:"requested_by"`
	Quantity      int       `json:"quantity"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	ApprovedBy    string    `json:"approved_by,omitempty"`
	DecisionNotes string    `json:"decision_notes,omitempty"`
	ItemName      string    `json:"item_name,omitempty"`
	Unit          string    `json:"unit,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ApprovalResponse result of an approval: item, log entry and request updated
// in one transaction.
type ApprovalResponse struct {
	Item    ItemResponse            `json:"item"`
	Log     LogResponse             `json:"log"`
	Request StockoutRequestResponse `json:"request"`
}

// PendingCountResponse payload for the sidebar badge poll.
type PendingCountResponse struct {
	Pending int `json:"pending"`
}
