package dto

// CategoryCount items and total quantity per category (active items only).
type CategoryCount struct {
	Category      string `json:"category"`
	Count         int    `json:"count"`
	TotalQuantity int    `json:"total_quantity"`
}

// StatusCount number of active items per stock-status tier.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardStatsResponse aggregate numbers for the dashboard cards and charts.
// All tiers are computed from current quantities at query time, never stored.
type DashboardStatsResponse struct {
	TotalItems         int             `json:"total_items"`
	LowStockItems      int             `json:"low_stock_items"`
	OutOfStockItems    int             `json:"out_of_stock_items"`
	ArchivedItems      int             `json:"archived_items"`
	TotalQuantity      int             `json:"total_quantity"`
	ByCategory         []CategoryCount `json:"by_category"`
	StatusDistribution []StatusCount   `json:"status_distribution"`
}
