package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NadafMM/inventory-management-system-sub001/internal/application/category"
	"github.com/NadafMM/inventory-management-system-sub001/internal/application/dto"
	"github.com/NadafMM/inventory-management-system-sub001/internal/domain"
	"github.com/NadafMM/inventory-management-system-sub001/pkg/validator"
)

// CategoryHandler serves the category tree endpoints.
type CategoryHandler struct {
	uc *category.Service
}

// NewCategoryHandler builds the handler.
func NewCategoryHandler(uc *category.Service) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create handles POST /api/v1/categories.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return writeError(c, domain.NewValidationError("", validator.Join(errs)))
	}
	out, err := h.uc.Create(c.Context(), category.CreateInput{
		Name:        in.Name,
		Description: in.Description,
		ParentID:    in.ParentID,
		SortOrder:   in.SortOrder,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCategoryResponse(out))
}

// GetByID handles GET /api/v1/categories/:id. Soft-deleted categories stay
// queryable by id.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToCategoryResponse(out))
}

// Update handles PUT /api/v1/categories/:id.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return writeError(c, domain.NewValidationError("", validator.Join(errs)))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), category.UpdateInput{
		Name:        in.Name,
		Description: in.Description,
		ParentID:    in.ParentID,
		SortOrder:   in.SortOrder,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToCategoryResponse(out))
}

// Delete handles DELETE /api/v1/categories/:id (cascading soft delete).
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore handles POST /api/v1/categories/:id/restore.
func (h *CategoryHandler) Restore(c *fiber.Ctx) error {
	out, err := h.uc.Restore(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToCategoryResponse(out))
}

// ListRoots handles GET /api/v1/categories.
func (h *CategoryHandler) ListRoots(c *fiber.Ctx) error {
	out, err := h.uc.ListRoots(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToCategoryResponses(out))
}

// ListChildren handles GET /api/v1/categories/:id/children.
func (h *CategoryHandler) ListChildren(c *fiber.Ctx) error {
	out, err := h.uc.ListChildren(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToCategoryResponses(out))
}

// ListAncestors handles GET /api/v1/categories/:id/ancestors, returning the
// chain from the root down to the category itself.
func (h *CategoryHandler) ListAncestors(c *fiber.Ctx) error {
	out, err := h.uc.AncestorPath(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToCategoryResponses(out))
}

// ListDescendants handles GET /api/v1/categories/:id/descendants.
func (h *CategoryHandler) ListDescendants(c *fiber.Ctx) error {
	out, err := h.uc.ListDescendants(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToCategoryResponses(out))
}
