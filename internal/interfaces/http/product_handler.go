package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NadafMM/inventory-management-system-sub001/internal/application/dto"
	"github.com/NadafMM/inventory-management-system-sub001/internal/application/product"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
	"github.com/NadafMM/inventory-management-system-sub001/pkg/validator"
)

// ProductHandler serves the product catalog endpoints.
type ProductHandler struct {
	uc *product.Service
}

// NewProductHandler builds the handler.
func NewProductHandler(uc *product.Service) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return writeError(c, domain.NewValidationError("", validator.Join(errs)))
	}
	out, err := h.uc.Create(c.Context(), product.CreateInput{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductResponse(out))
}

// GetByID handles GET /api/v1/products/:id.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToProductResponse(out))
}

// Update handles PUT /api/v1/products/:id.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return writeError(c, domain.NewValidationError("", validator.Join(errs)))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), product.UpdateInput{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToProductResponse(out))
}

// Delete handles DELETE /api/v1/products/:id.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List handles GET /api/v1/products; a category_id query filters to one
// category.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()

	var list []*entity.Product
	var err error
	if categoryID := c.Query("category_id"); categoryID != "" {
		list, err = h.uc.ListByCategory(c.Context(), categoryID, page.Limit, page.Offset)
	} else {
		list, err = h.uc.List(c.Context(), page.Limit, page.Offset)
	}
	if err != nil {
		return writeError(c, err)
	}
	items := dto.ToProductResponses(list)
	return c.JSON(dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Count: len(items)},
	})
}
