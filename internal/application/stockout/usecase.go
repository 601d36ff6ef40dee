package stockout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NikoNepomuceno/AcadKeeper/internal/application/ledger"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/repository"
)

// UseCase is the stock-out request state machine layered on the ledger:
// pending -> approved | denied, never reopened. Submission is cheap and
// non-reserving; approval re-validates against the current quantity under a
// row lock.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	reqRepo  repository.StockoutRequestRepository
}

// NewUseCase builds the workflow use case.
func NewUseCase(txRunner TxRunner, itemRepo repository.ItemRepository, reqRepo repository.StockoutRequestRepository) *UseCase {
	return &UseCase{txRunner: txRunner, itemRepo: itemRepo, reqRepo: reqRepo}
}

// RequestView a stock-out request with its item snapshot for display.
type RequestView struct {
	Request  *entity.StockoutRequest
	ItemName string
	Unit     string
}

// ApprovalResult everything written by an approval, for the caller to
// re-render from.
type ApprovalResult struct {
	Item    *entity.InventoryItem
	Log     *entity.InventoryLog
	Request *entity.StockoutRequest
}

// SubmitRequest creates a pending request against an item. The availability
// check reads the item's quantity at submission time without a lock: two
// staff members may both submit valid-looking requests whose sum exceeds
// stock. Nothing is reserved and no log entry is written.
func (uc *UseCase) SubmitRequest(ctx context.Context, itemID, requesterID, requesterRole string, quantity int, notes string) (*entity.StockoutRequest, error) {
	if !entity.CanRequestStockout(requesterRole) {
		return nil, domain.ErrForbidden
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.IsArchived {
		return nil, domain.ErrItemArchived
	}
	if item.Quantity == 0 {
		return nil, domain.ErrOutOfStock
	}
	if quantity > item.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	now := time.Now()
	req := &entity.StockoutRequest{
		ID:          uuid.New().String(),
		InventoryID: itemID,
		RequestedBy: requesterID,
		Quantity:    quantity,
		Notes:       notes,
		Status:      entity.RequestPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.reqRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

// ApproveRequest applies a pending withdrawal to the ledger. The item row is
// locked and the new quantity recomputed from the locked read, not the
// snapshot taken at submission; stock depleted in the meantime fails the
// approval with ErrInvalidQuantity. Quantity update, stock_out log entry and
// request resolution commit as one transaction.
func (uc *UseCase) ApproveRequest(ctx context.Context, requestID, approverID, approverRole, decisionNotes string) (*ApprovalResult, error) {
	if !entity.CanResolveRequests(approverRole) {
		return nil, domain.ErrForbidden
	}

	req, err := uc.reqRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if req.Resolved() {
		return nil, domain.ErrAlreadyResolved
	}

	notes := decisionNotes
	if notes == "" {
		notes = "Approved stock-out request"
	}

	var result ApprovalResult
	err = uc.txRunner.RunWorkflow(ctx, func(
		items repository.ItemRepository,
		logs repository.LogRepository,
		requests repository.StockoutRequestRepository,
	) error {
		item, err := items.GetForUpdate(req.InventoryID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		newQty := item.Quantity - req.Quantity
		if newQty < 0 {
			return domain.ErrInvalidQuantity
		}

		now := time.Now()
		prevQty := item.Quantity
		item.Quantity = newQty
		item.UpdatedAt = now
		if err := items.Update(item); err != nil {
			return err
		}

		logEntry := &entity.InventoryLog{
			ID:               uuid.New().String(),
			InventoryID:      item.ID,
			ActionType:       entity.ActionStockOut,
			ItemName:         item.Name,
			PreviousQuantity: prevQty,
			NewQuantity:      newQty,
			QuantityChange:   -req.Quantity,
			Notes:            notes,
			CreatedAt:        now,
		}
		if err := logs.Create(logEntry); err != nil {
			return err
		}

		// Guarded update: zero rows means another admin resolved it first.
		ok, err := requests.Resolve(req.ID, entity.RequestApproved, approverID, decisionNotes, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAlreadyResolved
		}

		req.Status = entity.RequestApproved
		req.ApprovedBy = approverID
		req.DecisionNotes = decisionNotes
		req.UpdatedAt = now
		result = ApprovalResult{Item: item, Log: logEntry, Request: req}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DenyRequest resolves a pending request with no ledger effect.
func (uc *UseCase) DenyRequest(ctx context.Context, requestID, approverID, approverRole, decisionNotes string) (*entity.StockoutRequest, error) {
	if !entity.CanResolveRequests(approverRole) {
		return nil, domain.ErrForbidden
	}

	req, err := uc.reqRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if req.Resolved() {
		return nil, domain.ErrAlreadyResolved
	}

	now := time.Now()
	ok, err := uc.reqRepo.Resolve(req.ID, entity.RequestDenied, approverID, decisionNotes, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAlreadyResolved
	}

	req.Status = entity.RequestDenied
	req.ApprovedBy = approverID
	req.DecisionNotes = decisionNotes
	req.UpdatedAt = now
	return req, nil
}

// ListPending returns pending requests with their item snapshots, newest first.
func (uc *UseCase) ListPending() ([]RequestView, error) {
	reqs, err := uc.reqRepo.ListPending()
	if err != nil {
		return nil, err
	}
	return uc.attachItems(reqs)
}

// CountPending returns the number of pending requests (sidebar badge poll).
func (uc *UseCase) CountPending() (int, error) {
	return uc.reqRepo.CountPending()
}

// ListActivity returns requests of any status created since the start of the
// given range, newest first.
func (uc *UseCase) ListActivity(rangeKey string, now time.Time) ([]RequestView, error) {
	start, err := ledger.RangeStart(rangeKey, now)
	if err != nil {
		return nil, err
	}
	reqs, err := uc.reqRepo.ListSince(start)
	if err != nil {
		return nil, err
	}
	return uc.attachItems(reqs)
}

func (uc *UseCase) attachItems(reqs []*entity.StockoutRequest) ([]RequestView, error) {
	views := make([]RequestView, 0, len(reqs))
	for _, r := range reqs {
		view := RequestView{Request: r}
		item, err := uc.itemRepo.GetByID(r.InventoryID)
		if err != nil {
			return nil, err
		}
		if item != nil {
			view.ItemName = item.Name
			view.Unit = item.Unit
		}
		views = append(views, view)
	}
	return views, nil
}
