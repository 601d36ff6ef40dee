package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NikoNepomuceno/AcadKeeper/internal/application/dto"
	"github.com/NikoNepomuceno/AcadKeeper/internal/application/ledger"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain/entity"
)

// InventoryHandler handles item and activity log endpoints (protected).
type InventoryHandler struct {
	uc *ledger.UseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *ledger.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func toItemResponse(it *entity.InventoryItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		Quantity:     it.Quantity,
		Unit:         it.Unit,
		MinimumStock: it.MinimumStock,
		Location:     it.Location,
		Notes:        it.Notes,
		IsArchived:   it.IsArchived,
		StockStatus:  it.StockStatus(),
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}

func toLogResponse(l *entity.InventoryLog) dto.LogResponse {
	return dto.LogResponse{
		ID:               l.ID,
		InventoryID:      l.InventoryID,
		ActionType:       l.ActionType,
		ItemName:         l.ItemName,
		PreviousQuantity: l.PreviousQuantity,
		NewQuantity:      l.NewQuantity,
		QuantityChange:   l.QuantityChange,
		Notes:            l.Notes,
		CreatedAt:        l.CreatedAt,
	}
}

func itemInputFromRequest(in dto.SaveItemRequest) ledger.ItemInput {
	return ledger.ItemInput{
		Name:         in.Name,
		Category:     in.Category,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		MinimumStock: in.MinimumStock,
		Location:     in.Location,
		Notes:        in.Notes,
	}
}

// List godoc
// @Summary      List inventory items
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        archived  query  bool    false  "List archived instead of active items"
// @Param        search    query  string  false  "Match against name or category"
// @Param        category  query  string  false  "Exact category"
// @Param        status    query  string  false  "Stock status tier"
// @Param        location  query  string  false  "Exact location"
// @Success      200  {array}   dto.ItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	archived := c.QueryBool("archived")
	filter := ledger.ItemFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Location: c.Query("location"),
	}
	items, err := h.uc.ListItems(archived, filter)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a single item
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Item ID"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetItem(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toItemResponse(item))
}

// Create godoc
// @Summary      Create an inventory item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveItemRequest  true  "item_name, category, quantity, unit, minimum_stock"
// @Success      201  {object}  dto.AdjustmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, logEntry, err := h.uc.CreateItem(c.Context(), GetRole(c), itemInputFromRequest(in))
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AdjustmentResponse{
		Item: toItemResponse(item),
		Log:  toLogResponse(logEntry),
	})
}

// Update godoc
// @Summary      Update an inventory item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Item ID"
// @Param        body  body  dto.SaveItemRequest  true  "Full item fields"
// @Success      200  {object}  dto.AdjustmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, logEntry, err := h.uc.UpdateItem(c.Context(), c.Params("id"), GetRole(c), itemInputFromRequest(in))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.AdjustmentResponse{
		Item: toItemResponse(item),
		Log:  toLogResponse(logEntry),
	})
}

// Archive godoc
// @Summary      Archive or restore an item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "Item ID"
// @Param        body  body  dto.ArchiveItemRequest  true  "archived flag"
// @Success      200  {object}  dto.AdjustmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/archive [post]
func (h *InventoryHandler) Archive(c *fiber.Ctx) error {
	var in dto.ArchiveItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, logEntry, err := h.uc.SetArchived(c.Context(), c.Params("id"), in.Archived, GetRole(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.AdjustmentResponse{
		Item: toItemResponse(item),
		Log:  toLogResponse(logEntry),
	})
}

// Adjust godoc
// @Summary      Adjust stock directly (no approval step)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "Item ID"
// @Param        body  body  dto.AdjustStockRequest  true  "direction (in|out), quantity, notes"
// @Success      200  {object}  dto.AdjustmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, logEntry, err := h.uc.ApplyDirectAdjustment(c.Context(), c.Params("id"), in.Direction, in.Quantity, GetRole(c), in.Notes)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.AdjustmentResponse{
		Item: toItemResponse(item),
		Log:  toLogResponse(logEntry),
	})
}

// Logs godoc
// @Summary      Activity log for a time range
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        range  query  string  false  "day|week|month|year (default day)"
// @Success      200  {array}   dto.LogResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/logs [get]
func (h *InventoryHandler) Logs(c *fiber.Ctx) error {
	rangeKey := c.Query("range", ledger.RangeDay)
	logs, err := h.uc.ListLogs(rangeKey, time.Now())
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toLogResponse(l))
	}
	return c.JSON(out)
}
