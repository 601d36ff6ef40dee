package repository

import (
	"time"

	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
)

// StockoutRequestRepository is the persistence port for stock-out requests.
type StockoutRequestRepository interface {
	Create(req *entity.StockoutRequest) error
	// GetByID returns (nil, nil) when the request does not exist.
	GetByID(id string) (*entity.StockoutRequest, error)
	ListPending() ([]*entity.StockoutRequest, error)
	CountPending() (int, error)
	// ListSince returns requests with created_at >= since, newest first,
	// regardless of status (approvals activity feed).
	ListSince(since time.Time) ([]*entity.StockoutRequest, error)
	// Resolve moves a pending request to a terminal status. Returns false when
	// no pending row matched, i.e. the request was already resolved.
	Resolve(id, status, approvedBy, decisionNotes string, at time.Time) (bool, error)
}
