package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikoNepomuceno/AcadKeeper/internal/application/usecase"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
)

// stubItems serves fixed item lists to the dashboard.
type stubItems struct {
	active   []*entity.InventoryItem
	archived []*entity.InventoryItem
}

func (s *stubItems) Create(*entity.InventoryItem) error { return nil }
func (s *stubItems) GetByID(string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (s *stubItems) GetForUpdate(string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (s *stubItems) Update(*entity.InventoryItem) error { return nil }
func (s *stubItems) FindActiveDuplicate(string, string, string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (s *stubItems) ListByArchived(archived bool) ([]*entity.InventoryItem, error) {
	if archived {
		return s.archived, nil
	}
	return s.active, nil
}

func TestDashboardStats(t *testing.T) {
	repo := &stubItems{
		active: []*entity.InventoryItem{
			{Name: "Pencils", Category: "Writing Materials", Quantity: 100, MinimumStock: 20},
			{Name: "Pens", Category: "Writing Materials", Quantity: 5, MinimumStock: 10},
			{Name: "Chalk", Category: "Writing Materials", Quantity: 0, MinimumStock: 10},
			{Name: "Glue", Category: "Art Supplies", Quantity: 12, MinimumStock: 10},
		},
		archived: []*entity.InventoryItem{
			{Name: "Overhead Projector", Category: "Technology", Quantity: 1},
		},
	}
	uc := usecase.NewDashboardUseCase(repo)

	stats, err := uc.Stats()
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 1, stats.ArchivedItems)
	assert.Equal(t, 117, stats.TotalQuantity)
	assert.Equal(t, 1, stats.OutOfStockItems)
	assert.Equal(t, 2, stats.LowStockItems, "out-of-stock items also count as at-or-below minimum")

	require.Len(t, stats.ByCategory, 2)
	assert.Equal(t, "Writing Materials", stats.ByCategory[0].Category, "fixed category order")
	assert.Equal(t, 3, stats.ByCategory[0].Count)
	assert.Equal(t, 105, stats.ByCategory[0].TotalQuantity)
	assert.Equal(t, "Art Supplies", stats.ByCategory[1].Category)

	// Pencils in stock, Glue running low, Pens low, Chalk out.
	require.Len(t, stats.StatusDistribution, 4)
	assert.Equal(t, entity.StockStatusInStock, stats.StatusDistribution[0].Status)
	assert.Equal(t, 1, stats.StatusDistribution[0].Count)
	assert.Equal(t, entity.StockStatusOut, stats.StatusDistribution[3].Status)
}

func TestDashboardStats_Empty(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&stubItems{})

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalItems)
	assert.Empty(t, stats.ByCategory)
	assert.Empty(t, stats.StatusDistribution)
}
