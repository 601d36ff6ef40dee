package stockout

import (
	"context"

	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction with item, log and
// request repositories bound to that transaction. Approval is a three-write
// sequence (quantity, log entry, request status) that must commit or roll
// back as one unit.
type TxRunner interface {
	RunWorkflow(ctx context.Context, fn func(
		items repository.ItemRepository,
		logs repository.LogRepository,
		requests repository.StockoutRequestRepository,
	) error) error
}
