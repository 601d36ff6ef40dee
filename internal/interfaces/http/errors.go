package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/NikoNepomuceno/AcadKeeper/internal/application/dto"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain"
)

// domainStatus maps each domain sentinel to its HTTP status and stable error
// code. Anything unmapped is a storage failure.
var domainStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrInvalidQuantity, fiber.StatusConflict, "INVALID_QUANTITY"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrOutOfStock, fiber.StatusConflict, "OUT_OF_STOCK"},
	{domain.ErrItemArchived, fiber.StatusConflict, "ITEM_ARCHIVED"},
	{domain.ErrDuplicateItem, fiber.StatusConflict, "DUPLICATE_ITEM"},
	{domain.ErrInvalidCategory, fiber.StatusBadRequest, "INVALID_CATEGORY"},
	{domain.ErrAlreadyResolved, fiber.StatusConflict, "ALREADY_RESOLVED"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrWeakPassword, fiber.StatusBadRequest, "WEAK_PASSWORD"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrUserSuspended, fiber.StatusForbidden, "USER_SUSPENDED"},
}

// domainError writes the JSON error response for a use case error.
func domainError(c *fiber.Ctx, err error) error {
	for _, m := range domainStatus {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE_FAILURE", Message: "storage operation failed"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
}
