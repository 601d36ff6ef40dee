package repository

import (
	"time"

	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
)

// LogRepository is the persistence port for the append-only inventory log.
// Entries are inserted once and never updated or deleted.
type LogRepository interface {
	Create(log *entity.InventoryLog) error
	// ListSince returns entries with created_at >= since, newest first.
	ListSince(since time.Time) ([]*entity.InventoryLog, error)
}
