package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/repository"
)

var _ repository.StockoutRequestRepository = (*StockoutRepo)(nil)

// StockoutRepo StockoutRequestRepository implementation over PostgreSQL
// (usable with pool or tx).
type StockoutRepo struct {
	q Querier
}

// NewStockoutRepository builds the request adapter. Pass pool or tx (Querier).
func NewStockoutRepository(q Querier) *StockoutRepo {
	return &StockoutRepo{q: q}
}

const requestColumns = `id, inventory_id, requested_by, quantity, notes, status, approved_by, decision_notes, created_at, updated_at`

func scanRequest(row pgx.Row) (*entity.StockoutRequest, error) {
	var req entity.StockoutRequest
	var approvedBy *string
	err := row.Scan(
		&req.ID, &req.InventoryID, &req.RequestedBy, &req.Quantity, &req.Notes,
		&req.Status, &approvedBy, &req.DecisionNotes, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if approvedBy != nil {
		req.ApprovedBy = *approvedBy
	}
	return &req, nil
}

// Create persists a new pending request.
func (r *StockoutRepo) Create(req *entity.StockoutRequest) error {
	query := `
		INSERT INTO stockout_requests (id, inventory_id, requested_by, quantity, notes, status, decision_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.InventoryID, req.RequestedBy, req.Quantity, req.Notes,
		req.Status, req.DecisionNotes, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stockout request: %w", err)
	}
	return nil
}

// GetByID fetches a request by ID. Returns (nil, nil) when missing.
func (r *StockoutRepo) GetByID(id string) (*entity.StockoutRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM stockout_requests WHERE id = $1`
	req, err := scanRequest(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stockout request: %w", err)
	}
	return req, nil
}

// ListPending returns pending requests, newest first.
func (r *StockoutRepo) ListPending() ([]*entity.StockoutRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM stockout_requests WHERE status = $1 ORDER BY created_at DESC`
	return r.list(query, entity.RequestPending)
}

// CountPending counts pending requests.
func (r *StockoutRepo) CountPending() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stockout_requests WHERE status = $1`, entity.RequestPending,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending requests: %w", err)
	}
	return n, nil
}

// ListSince returns requests of any status with created_at >= since, newest first.
func (r *StockoutRepo) ListSince(since time.Time) ([]*entity.StockoutRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM stockout_requests WHERE created_at >= $1 ORDER BY created_at DESC`
	return r.list(query, since)
}

// Resolve moves a pending request to a terminal status. The WHERE guard on
// status makes concurrent resolutions race-safe: the loser sees zero affected
// rows and reports AlreadyResolved.
func (r *StockoutRepo) Resolve(id, status, approvedBy, decisionNotes string, at time.Time) (bool, error) {
	query := `
		UPDATE stockout_requests
		SET status = $2, approved_by = $3, decision_notes = $4, updated_at = $5
		WHERE id = $1 AND status = $6`
	tag, err := r.q.Exec(context.Background(), query, id, status, approvedBy, decisionNotes, at, entity.RequestPending)
	if err != nil {
		return false, fmt.Errorf("resolve stockout request: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *StockoutRepo) list(query string, args ...any) ([]*entity.StockoutRequest, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stockout requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockoutRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stockout request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}
