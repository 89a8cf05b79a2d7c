package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NadafMM/inventory-management-system-sub001/internal/application/dto"
	"github.com/NadafMM/inventory-management-system-sub001/internal/application/stock"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
	"github.com/NadafMM/inventory-management-system-sub001/pkg/validator"
)

// StockHandler serves the stock ledger endpoints: the five quantity
// operations and ledger listing.
type StockHandler struct {
	uc *stock.Service
}

// NewStockHandler builds the handler.
func NewStockHandler(uc *stock.Service) *StockHandler {
	return &StockHandler{uc: uc}
}

// stockOp is the shared signature of the four unsigned-quantity operations.
type stockOp func(ctx context.Context, skuID string, quantity int, audit stock.AuditInput) (*entity.Sku, error)

// AddStock handles POST /api/v1/skus/:id/stock/add.
func (h *StockHandler) AddStock(c *fiber.Ctx) error {
	return h.operate(c, h.uc.AddStock)
}

// RemoveStock handles POST /api/v1/skus/:id/stock/remove.
func (h *StockHandler) RemoveStock(c *fiber.Ctx) error {
	return h.operate(c, h.uc.RemoveStock)
}

// Reserve handles POST /api/v1/skus/:id/stock/reserve.
func (h *StockHandler) Reserve(c *fiber.Ctx) error {
	return h.operate(c, h.uc.Reserve)
}

// Release handles POST /api/v1/skus/:id/stock/release.
func (h *StockHandler) Release(c *fiber.Ctx) error {
	return h.operate(c, h.uc.Release)
}

// Adjust handles POST /api/v1/skus/:id/stock/adjust with a signed delta.
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return writeError(c, domain.NewValidationError("", validator.Join(errs)))
	}
	out, err := h.uc.Adjust(c.Context(), c.Params("id"), in.Delta, stock.AuditInput{
		Reason:      in.Reason,
		PerformedBy: in.PerformedBy,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToSkuResponse(out))
}

// ListTransactions handles GET /api/v1/skus/:id/transactions with optional
// RFC3339 from/to bounds.
func (h *StockHandler) ListTransactions(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()

	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return writeError(c, err)
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return writeError(c, err)
	}

	list, err := h.uc.ListTransactions(c.Context(), c.Params("id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	items := dto.ToTransactionResponses(list)
	return c.JSON(dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Count: len(items)},
	})
}

// ListTransactionsByType handles GET /api/v1/transactions?type=IN across all
// SKUs.
func (h *StockHandler) ListTransactionsByType(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()

	list, err := h.uc.ListTransactionsByType(c.Context(), c.Query("type"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	items := dto.ToTransactionResponses(list)
	return c.JSON(dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Count: len(items)},
	})
}

func (h *StockHandler) operate(c *fiber.Ctx, op stockOp) error {
	var in dto.StockOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return writeError(c, domain.NewValidationError("", validator.Join(errs)))
	}
	out, err := op(c.Context(), c.Params("id"), in.Quantity, stock.AuditInput{
		ReferenceID:   in.ReferenceID,
		ReferenceType: in.ReferenceType,
		Reason:        in.Reason,
		PerformedBy:   in.PerformedBy,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToSkuResponse(out))
}

func parseTimeQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be RFC3339")
	}
	return &t, nil
}
