package stockout_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikoNepomuceno/AcadKeeper/internal/application/stockout"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ─────────────────────────────────────────────────────────────────────────────

type memStore struct {
	items    map[string]*entity.InventoryItem
	logs     []*entity.InventoryLog
	requests map[string]*entity.StockoutRequest
}

func newMemStore() *memStore {
	return &memStore{
		items:    make(map[string]*entity.InventoryItem),
		requests: make(map[string]*entity.StockoutRequest),
	}
}

func (s *memStore) addItem(name string, quantity int) *entity.InventoryItem {
	it := &entity.InventoryItem{
		ID:       uuid.New().String(),
		Name:     name,
		Category: "Writing Materials",
		Quantity: quantity,
		Unit:     "pieces",
	}
	s.items[it.ID] = it
	return it
}

type memItems struct{ s *memStore }

func (r *memItems) Create(item *entity.InventoryItem) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *memItems) GetByID(id string) (*entity.InventoryItem, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItems) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}

func (r *memItems) Update(item *entity.InventoryItem) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *memItems) FindActiveDuplicate(name, category, excludeID string) (*entity.InventoryItem, error) {
	return nil, nil
}

func (r *memItems) ListByArchived(archived bool) ([]*entity.InventoryItem, error) {
	return nil, nil
}

type memLogs struct{ s *memStore }

func (r *memLogs) Create(log *entity.InventoryLog) error {
	cp := *log
	r.s.logs = append(r.s.logs, &cp)
	return nil
}

func (r *memLogs) ListSince(since time.Time) ([]*entity.InventoryLog, error) {
	return nil, nil
}

type memRequests struct{ s *memStore }

func (r *memRequests) Create(req *entity.StockoutRequest) error {
	cp := *req
	r.s.requests[req.ID] = &cp
	return nil
}

func (r *memRequests) GetByID(id string) (*entity.StockoutRequest, error) {
	req, ok := r.s.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *memRequests) ListPending() ([]*entity.StockoutRequest, error) {
	var out []*entity.StockoutRequest
	for _, req := range r.s.requests {
		if req.Status == entity.RequestPending {
			cp := *req
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memRequests) CountPending() (int, error) {
	n := 0
	for _, req := range r.s.requests {
		if req.Status == entity.RequestPending {
			n++
		}
	}
	return n, nil
}

func (r *memRequests) ListSince(since time.Time) ([]*entity.StockoutRequest, error) {
	var out []*entity.StockoutRequest
	for _, req := range r.s.requests {
		if !req.CreatedAt.Before(since) {
			cp := *req
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Resolve honors the pending guard, like the SQL WHERE status = 'pending'.
func (r *memRequests) Resolve(id, status, approvedBy, decisionNotes string, at time.Time) (bool, error) {
	req, ok := r.s.requests[id]
	if !ok || req.Status != entity.RequestPending {
		return false, nil
	}
	req.Status = status
	req.ApprovedBy = approvedBy
	req.DecisionNotes = decisionNotes
	req.UpdatedAt = at
	return true, nil
}

// memTx rolls the store back when fn fails, like a real transaction.
type memTx struct{ s *memStore }

func (t *memTx) RunWorkflow(ctx context.Context, fn func(
	repository.ItemRepository,
	repository.LogRepository,
	repository.StockoutRequestRepository,
) error) error {
	snapItems := make(map[string]entity.InventoryItem, len(t.s.items))
	for k, v := range t.s.items {
		snapItems[k] = *v
	}
	snapReqs := make(map[string]entity.StockoutRequest, len(t.s.requests))
	for k, v := range t.s.requests {
		snapReqs[k] = *v
	}
	snapLogs := len(t.s.logs)

	if err := fn(&memItems{t.s}, &memLogs{t.s}, &memRequests{t.s}); err != nil {
		t.s.items = make(map[string]*entity.InventoryItem, len(snapItems))
		for k, v := range snapItems {
			cp := v
			t.s.items[k] = &cp
		}
		t.s.requests = make(map[string]*entity.StockoutRequest, len(snapReqs))
		for k, v := range snapReqs {
			cp := v
			t.s.requests[k] = &cp
		}
		t.s.logs = t.s.logs[:snapLogs]
		return err
	}
	return nil
}

func newTestUseCase() (*stockout.UseCase, *memStore) {
	s := newMemStore()
	uc := stockout.NewUseCase(&memTx{s}, &memItems{s}, &memRequests{s})
	return uc, s
}

const (
	staffID = "staff-1"
	adminID = "admin-1"
)

// ─────────────────────────────────────────────────────────────────────────────
// Submission
// ─────────────────────────────────────────────────────────────────────────────

func TestSubmit_CreatesPendingRequestWithoutLogEntry(t *testing.T) {
	uc, s := newTestUseCase()
	item := s.addItem("Pencils", 100)

	req, err := uc.SubmitRequest(context.Background(), item.ID, staffID, entity.RoleStaff, 30, "for 3rd grade")
	require.NoError(t, err)

	assert.Equal(t, entity.RequestPending, req.Status)
	assert.Equal(t, 30, req.Quantity)
	assert.Equal(t, staffID, req.RequestedBy)

	assert.Equal(t, 100, s.items[item.ID].Quantity, "submission must not touch stock")
	assert.Empty(t, s.logs, "submission must not write a log entry")
}

func TestSubmit_FailuresCreateNoRequest(t *testing.T) {
	uc, s := newTestUseCase()
	ctx := context.Background()
	item := s.addItem("Pencils", 10)

	_, err := uc.SubmitRequest(ctx, item.ID, staffID, entity.RoleStaff, 11, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = uc.SubmitRequest(ctx, item.ID, staffID, entity.RoleStaff, 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SubmitRequest(ctx, "missing", staffID, entity.RoleStaff, 1, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	empty := s.addItem("Chalk", 0)
	_, err = uc.SubmitRequest(ctx, empty.ID, staffID, entity.RoleStaff, 1, "")
	assert.ErrorIs(t, err, domain.ErrOutOfStock)

	archived := s.addItem("Rulers", 5)
	s.items[archived.ID].IsArchived = true
	_, err = uc.SubmitRequest(ctx, archived.ID, staffID, entity.RoleStaff, 1, "")
	assert.ErrorIs(t, err, domain.ErrItemArchived)

	assert.Empty(t, s.requests, "no failed submission may leave a request behind")
}

func TestSubmit_QuantityEqualToStockAllowed(t *testing.T) {
	uc, s := newTestUseCase()
	item := s.addItem("Pencils", 10)

	req, err := uc.SubmitRequest(context.Background(), item.ID, staffID, entity.RoleStaff, 10, "")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestPending, req.Status)
}

// ─────────────────────────────────────────────────────────────────────────────
// Approval
// ─────────────────────────────────────────────────────────────────────────────

func TestApprove_PencilsScenario(t *testing.T) {
	uc, s := newTestUseCase()
	item := s.addItem("Pencils", 100)

	req, err := uc.SubmitRequest(context.Background(), item.ID, staffID, entity.RoleStaff, 30, "")
	require.NoError(t, err)

	result, err := uc.ApproveRequest(context.Background(), req.ID, adminID, entity.RoleAdmin, "")
	require.NoError(t, err)

	assert.Equal(t, 70, result.Item.Quantity)
	assert.Equal(t, entity.RequestApproved, result.Request.Status)
	assert.Equal(t, adminID, result.Request.ApprovedBy)

	assert.Equal(t, entity.ActionStockOut, result.Log.ActionType)
	assert.Equal(t, 100, result.Log.PreviousQuantity)
	assert.Equal(t, 70, result.Log.NewQuantity)
	assert.Equal(t, -30, result.Log.QuantityChange)
	assert.Equal(t, "Approved stock-out request", result.Log.Notes)

	assert.Equal(t, 70, s.items[item.ID].Quantity)
	assert.Len(t, s.logs, 1)
}

func TestApprove_RevalidatesAgainstCurrentStock(t *testing.T) {
	uc, s := newTestUseCase()
	ctx := context.Background()
	item := s.addItem("Pencils", 10)

	// Both requests pass the advisory check against quantity 10.
	first, err := uc.SubmitRequest(ctx, item.ID, staffID, entity.RoleStaff, 6, "")
	require.NoError(t, err)
	second, err := uc.SubmitRequest(ctx, item.ID, staffID, entity.RoleStaff, 6, "")
	require.NoError(t, err)

	_, err = uc.ApproveRequest(ctx, first.ID, adminID, entity.RoleAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, 4, s.items[item.ID].Quantity)

	// Only 4 left; the second approval must fail and change nothing.
	_, err = uc.ApproveRequest(ctx, second.ID, adminID, entity.RoleAdmin, "")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	assert.Equal(t, 4, s.items[item.ID].Quantity)
	assert.Equal(t, entity.RequestPending, s.requests[second.ID].Status, "failed approval leaves the request pending")
	assert.Len(t, s.logs, 1, "failed approval writes no log entry")
}

func TestApprove_AlreadyResolvedIsTerminal(t *testing.T) {
	uc, s := newTestUseCase()
	ctx := context.Background()
	item := s.addItem("Pencils", 100)

	req, err := uc.SubmitRequest(ctx, item.ID, staffID, entity.RoleStaff, 10, "")
	require.NoError(t, err)

	_, err = uc.ApproveRequest(ctx, req.ID, adminID, entity.RoleAdmin, "")
	require.NoError(t, err)

	// Second approval must not deduct again.
	_, err = uc.ApproveRequest(ctx, req.ID, adminID, entity.RoleAdmin, "")
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
	assert.Equal(t, 90, s.items[item.ID].Quantity)
	assert.Len(t, s.logs, 1)

	// A denied request cannot be approved either.
	req2, err := uc.SubmitRequest(ctx, item.ID, staffID, entity.RoleStaff, 10, "")
	require.NoError(t, err)
	_, err = uc.DenyRequest(ctx, req2.ID, adminID, entity.RoleAdmin, "not needed")
	require.NoError(t, err)
	_, err = uc.ApproveRequest(ctx, req2.ID, adminID, entity.RoleAdmin, "")
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
}

func TestApprove_StaffForbidden(t *testing.T) {
	uc, s := newTestUseCase()
	item := s.addItem("Pencils", 100)

	req, err := uc.SubmitRequest(context.Background(), item.ID, staffID, entity.RoleStaff, 10, "")
	require.NoError(t, err)

	_, err = uc.ApproveRequest(context.Background(), req.ID, staffID, entity.RoleStaff, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, entity.RequestPending, s.requests[req.ID].Status)
}

func TestApprove_CustomDecisionNotesOverrideDefault(t *testing.T) {
	uc, s := newTestUseCase()
	item := s.addItem("Pencils", 100)

	req, err := uc.SubmitRequest(context.Background(), item.ID, staffID, entity.RoleStaff, 10, "")
	require.NoError(t, err)

	result, err := uc.ApproveRequest(context.Background(), req.ID, adminID, entity.RoleAdmin, "approved for the art fair")
	require.NoError(t, err)
	assert.Equal(t, "approved for the art fair", result.Log.Notes)
	assert.Equal(t, "approved for the art fair", s.requests[req.ID].DecisionNotes)
}

// ─────────────────────────────────────────────────────────────────────────────
// Denial and listings
// ─────────────────────────────────────────────────────────────────────────────

func TestDeny_NoLedgerEffect(t *testing.T) {
	uc, s := newTestUseCase()
	item := s.addItem("Pencils", 100)

	req, err := uc.SubmitRequest(context.Background(), item.ID, staffID, entity.RoleStaff, 30, "")
	require.NoError(t, err)

	denied, err := uc.DenyRequest(context.Background(), req.ID, adminID, entity.RoleAdmin, "budget freeze")
	require.NoError(t, err)

	assert.Equal(t, entity.RequestDenied, denied.Status)
	assert.Equal(t, adminID, denied.ApprovedBy)
	assert.Equal(t, 100, s.items[item.ID].Quantity, "denial must not touch stock")
	assert.Empty(t, s.logs, "denial must not write a log entry")

	_, err = uc.DenyRequest(context.Background(), req.ID, adminID, entity.RoleAdmin, "")
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
}

func TestListPendingAndCount(t *testing.T) {
	uc, s := newTestUseCase()
	ctx := context.Background()
	item := s.addItem("Pencils", 100)

	first, err := uc.SubmitRequest(ctx, item.ID, staffID, entity.RoleStaff, 5, "")
	require.NoError(t, err)
	_, err = uc.SubmitRequest(ctx, item.ID, staffID, entity.RoleStaff, 5, "")
	require.NoError(t, err)

	n, err := uc.CountPending()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	views, err := uc.ListPending()
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Pencils", views[0].ItemName)
	assert.Equal(t, "pieces", views[0].Unit)

	_, err = uc.ApproveRequest(ctx, first.ID, adminID, entity.RoleAdmin, "")
	require.NoError(t, err)

	n, err = uc.CountPending()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestListActivity_IncludesResolvedRequests(t *testing.T) {
	uc, s := newTestUseCase()
	ctx := context.Background()
	item := s.addItem("Pencils", 100)

	req, err := uc.SubmitRequest(ctx, item.ID, staffID, entity.RoleStaff, 5, "")
	require.NoError(t, err)
	_, err = uc.ApproveRequest(ctx, req.ID, adminID, entity.RoleAdmin, "")
	require.NoError(t, err)

	views, err := uc.ListActivity("day", time.Now())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, entity.RequestApproved, views[0].Request.Status)

	_, err = uc.ListActivity("eon", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
