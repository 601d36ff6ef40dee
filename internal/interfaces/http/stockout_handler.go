package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NikoNepomuceno/AcadKeeper/internal/application/dto"
	"github.com/NikoNepomuceno/AcadKeeper/internal/application/ledger"
	"github.com/NikoNepomuceno/AcadKeeper/internal/application/stockout"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
)

// StockoutHandler handles the stock-out request workflow (protected).
type StockoutHandler struct {
	uc *stockout.UseCase
}

// NewStockoutHandler builds the handler.
func NewStockoutHandler(uc *stockout.UseCase) *StockoutHandler {
	return &StockoutHandler{uc: uc}
}

func toRequestResponse(req *entity.StockoutRequest, itemName, unit string) dto.StockoutRequestResponse {
	return dto.StockoutRequestResponse{
		ID:            req.ID,
		InventoryID:   req.InventoryID,
		RequestedBy:   req.RequestedBy,
		Quantity:      req.Quantity,
		Notes:         req.Notes,
		Status:        req.Status,
		ApprovedBy:    req.ApprovedBy,
		DecisionNotes: req.DecisionNotes,
		ItemName:      itemName,
		Unit:          unit,
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}

func toRequestResponses(views []stockout.RequestView) []dto.StockoutRequestResponse {
	out := make([]dto.StockoutRequestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toRequestResponse(v.Request, v.ItemName, v.Unit))
	}
	return out
}

// Submit godoc
// @Summary      Submit a stock-out request
// @Description  The availability check is advisory: nothing is reserved until
// @Description  an admin approves the request.
// @Tags         stockout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitStockoutRequest  true  "inventory_id, quantity, notes"
// @Success      201  {object}  dto.StockoutRequestResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stockout/requests [post]
func (h *StockoutHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitStockoutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	req, err := h.uc.SubmitRequest(c.Context(), in.InventoryID, GetUserID(c), GetRole(c), in.Quantity, in.Notes)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRequestResponse(req, "", ""))
}

// Approve godoc
// @Summary      Approve a pending request
// @Description  Re-validates against the current quantity under a row lock and
// @Description  commits the quantity update, log entry and resolution together.
// @Tags         stockout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Request ID"
// @Param        body  body  dto.DecisionRequest  false "decision_notes"
// @Success      200  {object}  dto.ApprovalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stockout/requests/{id}/approve [post]
func (h *StockoutHandler) Approve(c *fiber.Ctx) error {
	var in dto.DecisionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	result, err := h.uc.ApproveRequest(c.Context(), c.Params("id"), GetUserID(c), GetRole(c), in.DecisionNotes)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ApprovalResponse{
		Item:    toItemResponse(result.Item),
		Log:     toLogResponse(result.Log),
		Request: toRequestResponse(result.Request, result.Item.Name, result.Item.Unit),
	})
}

// Deny godoc
// @Summary      Deny a pending request
// @Tags         stockout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Request ID"
// @Param        body  body  dto.DecisionRequest  false "decision_notes"
// @Success      200  {object}  dto.StockoutRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stockout/requests/{id}/deny [post]
func (h *StockoutHandler) Deny(c *fiber.Ctx) error {
	var in dto.DecisionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	req, err := h.uc.DenyRequest(c.Context(), c.Params("id"), GetUserID(c), GetRole(c), in.DecisionNotes)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toRequestResponse(req, "", ""))
}

// ListPending godoc
// @Summary      List pending requests
// @Tags         stockout
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockoutRequestResponse
// @Router       /api/stockout/requests/pending [get]
func (h *StockoutHandler) ListPending(c *fiber.Ctx) error {
	views, err := h.uc.ListPending()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toRequestResponses(views))
}

// PendingCount godoc
// @Summary      Count pending requests
// @Tags         stockout
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PendingCountResponse
// @Router       /api/stockout/requests/pending/count [get]
func (h *StockoutHandler) PendingCount(c *fiber.Ctx) error {
	n, err := h.uc.CountPending()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.PendingCountResponse{Pending: n})
}

// Activity godoc
// @Summary      Request activity for a time range
// @Tags         stockout
// @Security     Bearer
// @Produce      json
// @Param        range  query  string  false  "day|week|month|year (default day)"
// @Success      200  {array}   dto.StockoutRequestResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stockout/activity [get]
func (h *StockoutHandler) Activity(c *fiber.Ctx) error {
	rangeKey := c.Query("range", ledger.RangeDay)
	views, err := h.uc.ListActivity(rangeKey, time.Now())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toRequestResponses(views))
}
