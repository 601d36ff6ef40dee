package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
)

func TestStockStatus_Tiers(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minimum  int
		want     string
	}{
		{"zero is out of stock", 0, 10, entity.StockStatusOut},
		{"zero with zero minimum is still out", 0, 0, entity.StockStatusOut},
		{"at minimum is low", 10, 10, entity.StockStatusLow},
		{"below minimum is low", 5, 10, entity.StockStatusLow},
		{"inside 1.5x band is running low", 15, 10, entity.StockStatusRunningLow},
		{"just above minimum is running low", 11, 10, entity.StockStatusRunningLow},
		{"above 1.5x is in stock", 16, 10, entity.StockStatusInStock},
		{"plenty is in stock", 100, 10, entity.StockStatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := entity.InventoryItem{Quantity: tc.quantity, MinimumStock: tc.minimum}
			assert.Equal(t, tc.want, it.StockStatus())
		})
	}
}

func TestValidCategory(t *testing.T) {
	for _, cat := range entity.Categories {
		assert.True(t, entity.ValidCategory(cat), cat)
	}
	assert.False(t, entity.ValidCategory("Snacks"))
	assert.False(t, entity.ValidCategory(""))
	assert.False(t, entity.ValidCategory("paper products"), "categories are case-sensitive")
}

func TestSameNameAndCategory(t *testing.T) {
	it := entity.InventoryItem{Name: "Pencils", Category: "Writing Materials"}

	assert.True(t, it.SameNameAndCategory("pencils", "Writing Materials"))
	assert.True(t, it.SameNameAndCategory("  Pencils  ", "Writing Materials"))
	assert.False(t, it.SameNameAndCategory("Pencils", "Art Supplies"))
	assert.False(t, it.SameNameAndCategory("Pens", "Writing Materials"))
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, entity.CanManageInventory(entity.RoleSuperAdmin))
	assert.True(t, entity.CanManageInventory(entity.RoleAdmin))
	assert.False(t, entity.CanManageInventory(entity.RoleStaff))

	assert.True(t, entity.CanResolveRequests(entity.RoleAdmin))
	assert.False(t, entity.CanResolveRequests(entity.RoleStaff))

	assert.True(t, entity.CanRequestStockout(entity.RoleStaff))
	assert.True(t, entity.CanRequestStockout(entity.RoleAdmin))
	assert.False(t, entity.CanRequestStockout("visitor"))
}

func TestStockoutRequestResolved(t *testing.T) {
	req := entity.StockoutRequest{Status: entity.RequestPending}
	assert.False(t, req.Resolved())

	req.Status = entity.RequestApproved
	assert.True(t, req.Resolved())

	req.Status = entity.RequestDenied
	assert.True(t, req.Resolved())
}
