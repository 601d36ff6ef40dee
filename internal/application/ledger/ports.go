package ledger

import (
	"context"

	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, passing repositories
// bound to that transaction. Guarantees the item write and its log entry
// commit or roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.ItemRepository,
		logs repository.LogRepository,
	) error) error
}
