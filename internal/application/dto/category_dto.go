package dto

import (
	"time"

	"github.com/NadafMM/inventory-management-system-sub001/internal/domain/entity"
)

// CreateCategoryRequest is the payload for POST /categories.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id" validate:"omitempty,uuid"`
	SortOrder   *int   `json:"sort_order" validate:"omitempty,min=0"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateCategoryRequest is the payload for PUT /categories/:id. Omitted
// fields are left untouched; parent_id "" promotes the category to a root.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	ParentID    *string `json:"parent_id"`
	SortOrder   *int    `json:"sort_order" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active"`
}

// CategoryResponse is the wire representation of a category.
type CategoryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ParentID    string     `json:"parent_id,omitempty"`
	Path        string     `json:"path"`
	Level       int        `json:"level"`
	SortOrder   int        `json:"sort_order"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// CategoryListResponse wraps a page of categories.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ToCategoryResponse maps the entity to its wire form.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
		Path:        c.Path,
		Level:       c.Level,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		DeletedAt:   c.DeletedAt,
	}
}

// ToCategoryResponses maps a slice of entities.
func ToCategoryResponses(cats []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}
