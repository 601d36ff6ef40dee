package repository

import "github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"

// ItemRepository is the persistence port for inventory items.
// Used inside transactions to guarantee consistency with the log.
type ItemRepository interface {
	Create(item *entity.InventoryItem) error
	// GetByID returns (nil, nil) when the item does not exist.
	GetByID(id string) (*entity.InventoryItem, error)
	// GetForUpdate locks the item row for the rest of the transaction
	// (SELECT FOR UPDATE). Returns (nil, nil) when missing.
	GetForUpdate(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// FindActiveDuplicate looks for a non-archived item with the same
	// name (case-insensitive) and category, excluding excludeID.
	FindActiveDuplicate(name, category, excludeID string) (*entity.InventoryItem, error)
	ListByArchived(archived bool) ([]*entity.InventoryItem, error)
}
