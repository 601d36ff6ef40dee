package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NikoNepomuceno/AcadKeeper/internal/domain"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/repository"
)

// Adjustment directions for direct stock changes.
const (
	AdjustIn  = "in"
	AdjustOut = "out"
)

// UseCase owns item records and the append-only activity log. Every
// quantity-affecting mutation writes its log entry in the same transaction.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	logRepo  repository.LogRepository
}

// NewUseCase builds the ledger use case.
func NewUseCase(txRunner TxRunner, itemRepo repository.ItemRepository, logRepo repository.LogRepository) *UseCase {
	return &UseCase{txRunner: txRunner, itemRepo: itemRepo, logRepo: logRepo}
}

// ItemInput fields for creating or updating an item.
type ItemInput struct {
	Name         string
	Category     string
	Quantity     int
	Unit         string
	MinimumStock int
	Location     string
	Notes        string
}

func validateItemInput(in ItemInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Unit) == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.MinimumStock < 0 {
		return domain.ErrInvalidInput
	}
	if !entity.ValidCategory(in.Category) {
		return domain.ErrInvalidCategory
	}
	// An item literally named "Paper" must live under Paper Products.
	if strings.EqualFold(name, "Paper") && in.Category != "Paper Products" {
		return domain.ErrInvalidCategory
	}
	return nil
}

// CreateItem creates an item and its "created" log entry in one transaction.
// Duplicate prevention: no two active items may share name+category
// (case-insensitive).
func (uc *UseCase) CreateItem(ctx context.Context, actorRole string, in ItemInput) (*entity.InventoryItem, *entity.InventoryLog, error) {
	if !entity.CanManageInventory(actorRole) {
		return nil, nil, domain.ErrForbidden
	}
	if err := validateItemInput(in); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Category:     in.Category,
		Quantity:     in.Quantity,
		Unit:         strings.TrimSpace(in.Unit),
		MinimumStock: in.MinimumStock,
		Location:     strings.TrimSpace(in.Location),
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	logEntry := newLogEntry(item.ID, entity.ActionCreated, item.Name, 0, item.Quantity, "New item added to inventory", now)

	err := uc.txRunner.Run(ctx, func(items repository.ItemRepository, logs repository.LogRepository) error {
		dup, err := items.FindActiveDuplicate(item.Name, item.Category, "")
		if err != nil {
			return err
		}
		if dup != nil {
			return domain.ErrDuplicateItem
		}
		if err := items.Create(item); err != nil {
			return err
		}
		return logs.Create(logEntry)
	})
	if err != nil {
		return nil, nil, err
	}
	return item, logEntry, nil
}

// UpdateItem edits item fields and writes an "updated" log entry. The
// previous/new quantities in the entry match the item's before/after state;
// they are equal when only metadata changed.
func (uc *UseCase) UpdateItem(ctx context.Context, itemID, actorRole string, in ItemInput) (*entity.InventoryItem, *entity.InventoryLog, error) {
	if !entity.CanManageInventory(actorRole) {
		return nil, nil, domain.ErrForbidden
	}
	if err := validateItemInput(in); err != nil {
		return nil, nil, err
	}

	var item *entity.InventoryItem
	var logEntry *entity.InventoryLog
	err := uc.txRunner.Run(ctx, func(items repository.ItemRepository, logs repository.LogRepository) error {
		cur, err := items.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrNotFound
		}
		dup, err := items.FindActiveDuplicate(strings.TrimSpace(in.Name), in.Category, itemID)
		if err != nil {
			return err
		}
		if dup != nil {
			return domain.ErrDuplicateItem
		}

		now := time.Now()
		prevQty := cur.Quantity
		cur.Name = strings.TrimSpace(in.Name)
		cur.Category = in.Category
		cur.Quantity = in.Quantity
		cur.Unit = strings.TrimSpace(in.Unit)
		cur.MinimumStock = in.MinimumStock
		cur.Location = strings.TrimSpace(in.Location)
		cur.Notes = in.Notes
		cur.UpdatedAt = now
		if err := items.Update(cur); err != nil {
			return err
		}

		logEntry = newLogEntry(cur.ID, entity.ActionUpdated, cur.Name, prevQty, cur.Quantity, "Item details updated", now)
		if err := logs.Create(logEntry); err != nil {
			return err
		}
		item = cur
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return item, logEntry, nil
}

// SetArchived toggles the archival flag. Quantity is untouched, so the log
// entry carries equal previous/new quantities.
func (uc *UseCase) SetArchived(ctx context.Context, itemID string, archived bool, actorRole string) (*entity.InventoryItem, *entity.InventoryLog, error) {
	if !entity.CanManageInventory(actorRole) {
		return nil, nil, domain.ErrForbidden
	}

	var item *entity.InventoryItem
	var logEntry *entity.InventoryLog
	err := uc.txRunner.Run(ctx, func(items repository.ItemRepository, logs repository.LogRepository) error {
		cur, err := items.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		cur.IsArchived = archived
		cur.UpdatedAt = now
		if err := items.Update(cur); err != nil {
			return err
		}

		action, notes := entity.ActionArchived, "Item archived"
		if !archived {
			action, notes = entity.ActionRestored, "Item restored from archive"
		}
		logEntry = newLogEntry(cur.ID, action, cur.Name, cur.Quantity, cur.Quantity, notes, now)
		if err := logs.Create(logEntry); err != nil {
			return err
		}
		item = cur
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return item, logEntry, nil
}

// ApplyDirectAdjustment changes an item's quantity immediately (no approval
// step). The quantity update and the stock_in/stock_out log entry are a single
// transaction with the item row locked (SELECT FOR UPDATE), so concurrent
// adjustments cannot drive stock negative off a stale read.
func (uc *UseCase) ApplyDirectAdjustment(ctx context.Context, itemID, direction string, amount int, actorRole, notes string) (*entity.InventoryItem, *entity.InventoryLog, error) {
	if !entity.CanManageInventory(actorRole) {
		return nil, nil, domain.ErrForbidden
	}
	if amount <= 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	if direction != AdjustIn && direction != AdjustOut {
		return nil, nil, domain.ErrInvalidInput
	}

	var item *entity.InventoryItem
	var logEntry *entity.InventoryLog
	err := uc.txRunner.Run(ctx, func(items repository.ItemRepository, logs repository.LogRepository) error {
		cur, err := items.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrNotFound
		}

		delta := amount
		action := entity.ActionStockIn
		if direction == AdjustOut {
			delta = -amount
			action = entity.ActionStockOut
		}
		newQty := cur.Quantity + delta
		if newQty < 0 {
			return domain.ErrInvalidQuantity
		}

		now := time.Now()
		prevQty := cur.Quantity
		cur.Quantity = newQty
		cur.UpdatedAt = now
		if err := items.Update(cur); err != nil {
			return err
		}

		if notes == "" {
			if direction == AdjustIn {
				notes = "Stock added"
			} else {
				notes = "Stock removed"
			}
		}
		logEntry = newLogEntry(cur.ID, action, cur.Name, prevQty, newQty, notes, now)
		if err := logs.Create(logEntry); err != nil {
			return err
		}
		item = cur
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return item, logEntry, nil
}

// ItemFilter optional filters for listing items.
type ItemFilter struct {
	Search   string // matches name or category, case-insensitive
	Category string
	Status   string // one of the entity.StockStatus* labels
	Location string
}

// ListItems returns active or archived items, newest first, filtered in memory
// the way the inventory table filters client-side.
func (uc *UseCase) ListItems(archived bool, f ItemFilter) ([]*entity.InventoryItem, error) {
	items, err := uc.itemRepo.ListByArchived(archived)
	if err != nil {
		return nil, err
	}
	if f == (ItemFilter{}) {
		return items, nil
	}
	out := make([]*entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(it.Name), q) && !strings.Contains(strings.ToLower(it.Category), q) {
				continue
			}
		}
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.Status != "" && it.StockStatus() != f.Status {
			continue
		}
		if f.Location != "" && it.Location != f.Location {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// ListLogs returns log entries since the start of the given range (day, week,
// month, year), computed from wall-clock now.
func (uc *UseCase) ListLogs(rangeKey string, now time.Time) ([]*entity.InventoryLog, error) {
	start, err := RangeStart(rangeKey, now)
	if err != nil {
		return nil, err
	}
	return uc.logRepo.ListSince(start)
}

// GetItem fetches a single item.
func (uc *UseCase) GetItem(itemID string) (*entity.InventoryItem, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func newLogEntry(inventoryID, action, itemName string, prevQty, newQty int, notes string, at time.Time) *entity.InventoryLog {
	return &entity.InventoryLog{
		ID:               uuid.New().String(),
		InventoryID:      inventoryID,
		ActionType:       action,
		ItemName:         itemName,
		PreviousQuantity: prevQty,
		NewQuantity:      newQty,
		QuantityChange:   newQty - prevQty,
		Notes:            notes,
		CreatedAt:        at,
	}
}
