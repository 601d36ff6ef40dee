package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/repository"
)

var _ repository.LogRepository = (*LogRepo)(nil)

// LogRepo LogRepository implementation over PostgreSQL (usable with pool or tx).
// The table is append-only: no update or delete statements exist here.
type LogRepo struct {
	q Querier
}

// NewLogRepository builds the log adapter. Pass pool or tx (Querier).
func NewLogRepository(q Querier) *LogRepo {
	return &LogRepo{q: q}
}

// Create appends a log entry.
func (r *LogRepo) Create(log *entity.InventoryLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_logs (id, inventory_id, action_type, item_name, previous_quantity, new_quantity, quantity_change, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	inventoryID := (*string)(nil)
	if log.InventoryID != "" {
		inventoryID = &log.InventoryID
	}
	_, err := r.q.Exec(context.Background(), query,
		log.ID, inventoryID, log.ActionType, log.ItemName,
		log.PreviousQuantity, log.NewQuantity, log.QuantityChange,
		log.Notes, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert log entry: %w", err)
	}
	return nil
}

// ListSince returns entries with created_at >= since, newest first.
func (r *LogRepo) ListSince(since time.Time) ([]*entity.InventoryLog, error) {
	query := `
		SELECT id, inventory_id, action_type, item_name, previous_quantity, new_quantity, quantity_change, notes, created_at
		FROM inventory_logs WHERE created_at >= $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, since)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLog
	for rows.Next() {
		var l entity.InventoryLog
		var inventoryID *string
		if err := rows.Scan(&l.ID, &inventoryID, &l.ActionType, &l.ItemName,
			&l.PreviousQuantity, &l.NewQuantity, &l.QuantityChange, &l.Notes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		if inventoryID != nil {
			l.InventoryID = *inventoryID
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
