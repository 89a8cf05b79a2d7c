package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NadafMM/inventory-management-system-sub001/internal/application/dto"
	"github.com/NadafMM/inventory-management-system-sub001/internal/application/product"
	"github.com/NadafMM/inventory-management-system-sub001/internal/application/stock"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain"
	"github.com/NadafMM/inventory-management-system-sub001/pkg/validator"
)

// SkuHandler serves SKU lifecycle endpoints. Quantity mutations live on
// StockHandler.
type SkuHandler struct {
	skus  *product.SkuService
	stock *stock.Service
}

// NewSkuHandler builds the handler.
func NewSkuHandler(skus *product.SkuService, stockUC *stock.Service) *SkuHandler {
	return &SkuHandler{skus: skus, stock: stockUC}
}

// Create handles POST /api/v1/products/:id/skus.
func (h *SkuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSkuRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return writeError(c, domain.NewValidationError("", validator.Join(errs)))
	}
	out, err := h.skus.CreateSku(c.Context(), product.CreateSkuInput{
		ProductID:        c.Params("id"),
		SkuCode:          in.SkuCode,
		Price:            in.Price,
		StockQuantity:    in.StockQuantity,
		ReservedQuantity: in.ReservedQuantity,
		ReorderPoint:     in.ReorderPoint,
		ReorderQuantity:  in.ReorderQuantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSkuResponse(out))
}

// ListByProduct handles GET /api/v1/products/:id/skus.
func (h *SkuHandler) ListByProduct(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	list, err := h.skus.ListByProduct(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	items := dto.ToSkuResponses(list)
	return c.JSON(dto.SkuListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Count: len(items)},
	})
}

// GetByID handles GET /api/v1/skus/:id.
func (h *SkuHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.skus.GetSku(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToSkuResponse(out))
}

// GetByCode handles GET /api/v1/skus/code/:code.
func (h *SkuHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.stock.GetSkuByCode(c.Context(), c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToSkuResponse(out))
}

// Delete handles DELETE /api/v1/skus/:id.
func (h *SkuHandler) Delete(c *fiber.Ctx) error {
	if err := h.skus.DeleteSku(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LowStock handles GET /api/v1/skus/low-stock, reporting active SKUs at or
// below their reorder point.
func (h *SkuHandler) LowStock(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	list, err := h.stock.LowStock(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	items := dto.ToSkuResponses(list)
	return c.JSON(dto.SkuListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Count: len(items)},
	})
}
