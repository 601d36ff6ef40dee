package usecase

import (
	"github.com/NikoNepomuceno/AcadKeeper/internal/application/dto"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/repository"
)

// DashboardUseCase read-only aggregates for the dashboard cards and charts.
// Stock-status tiers are classified at query time from current quantities;
// nothing here touches the write path.
type DashboardUseCase struct {
	itemRepo repository.ItemRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(itemRepo repository.ItemRepository) *DashboardUseCase {
	return &DashboardUseCase{itemRepo: itemRepo}
}

// Stats computes totals, per-category counts and the stock-status distribution.
func (uc *DashboardUseCase) Stats() (*dto.DashboardStatsResponse, error) {
	active, err := uc.itemRepo.ListByArchived(false)
	if err != nil {
		return nil, err
	}
	archived, err := uc.itemRepo.ListByArchived(true)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsResponse{
		TotalItems:    len(active),
		ArchivedItems: len(archived),
	}

	byCategory := make(map[string]*dto.CategoryCount)
	byStatus := make(map[string]int)
	for _, it := range active {
		stats.TotalQuantity += it.Quantity
		if it.Quantity == 0 {
			stats.OutOfStockItems++
		}
		if it.Quantity <= it.MinimumStock {
			stats.LowStockItems++
		}

		cc, ok := byCategory[it.Category]
		if !ok {
			cc = &dto.CategoryCount{Category: it.Category}
			byCategory[it.Category] = cc
		}
		cc.Count++
		cc.TotalQuantity += it.Quantity

		byStatus[it.StockStatus()]++
	}

	// Keep the fixed category order; skip empty categories like the dashboard does.
	for _, cat := range entity.Categories {
		if cc, ok := byCategory[cat]; ok {
			stats.ByCategory = append(stats.ByCategory, *cc)
		}
	}
	for _, status := range []string{entity.StockStatusInStock, entity.StockStatusRunningLow, entity.StockStatusLow, entity.StockStatusOut} {
		if n := byStatus[status]; n > 0 {
			stats.StatusDistribution = append(stats.StatusDistribution, dto.StatusCount{Status: status, Count: n})
		}
	}
	return stats, nil
}
