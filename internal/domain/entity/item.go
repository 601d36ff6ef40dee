package entity

import (
	"strings"
	"time"
)

// Categories is the fixed set of item categories.
var Categories = []string{
	"Writing Materials",
	"Paper Products",
	"Art Supplies",
	"Office Supplies",
	"Technology",
	"Classroom Equipment",
	"Sports Equipment",
	"Books & Reading Materials",
	"Science Lab Equipment",
	"Other",
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// InventoryItem is a trackable inventory unit. Quantity is never negative and
// archived items keep their history; items are never physically deleted.
type InventoryItem struct {
	ID           string
	Name         string
	Category     string
	Quantity     int
	Unit         string
	MinimumStock int
	Location     string
	Notes        string
	IsArchived   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Stock status labels, computed from quantity vs minimum stock.
// Presentation-only: never stored.
const (
	StockStatusOut        = "Out of Stock"
	StockStatusLow        = "Low Stock"
	StockStatusRunningLow = "Running Low"
	StockStatusInStock    = "In Stock"
)

// StockStatus classifies the item for display. The 1.5x tier mirrors the
// dashboard's "running low" band.
func (i *InventoryItem) StockStatus() string {
	switch {
	case i.Quantity == 0:
		return StockStatusOut
	case i.Quantity <= i.MinimumStock:
		return StockStatusLow
	case float64(i.Quantity) <= float64(i.MinimumStock)*1.5:
		return StockStatusRunningLow
	default:
		return StockStatusInStock
	}
}

// SameNameAndCategory compares name (case-insensitive, trimmed) and category,
// the key used for duplicate prevention among active items.
func (i *InventoryItem) SameNameAndCategory(name, category string) bool {
	return strings.EqualFold(strings.TrimSpace(i.Name), strings.TrimSpace(name)) &&
		i.Category == category
}
