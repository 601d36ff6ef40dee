package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikoNepomuceno/AcadKeeper/internal/application/ledger"
	"github.com/NikoNepomuceno/AcadKeeper/internal/application/stockout"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner and stockout.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ stockout.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner with the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run starts a transaction, runs fn with item and log repos bound to the tx
// and commits or rolls back.
func (r *TxRunner) Run(ctx context.Context, fn func(
	items repository.ItemRepository,
	logs repository.LogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewItemRepository(tx), NewLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunWorkflow starts a transaction with item, log and request repos (for
// stock-out approval, a three-write sequence).
func (r *TxRunner) RunWorkflow(ctx context.Context, fn func(
	items repository.ItemRepository,
	logs repository.LogRepository,
	requests repository.StockoutRequestRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewItemRepository(tx), NewLogRepository(tx), NewStockoutRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
