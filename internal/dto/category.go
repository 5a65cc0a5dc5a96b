package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// CreateCategoryRequest is the input for creating a category.
type CreateCategoryRequest struct {
	TransactionTypeID string  `json:"transactionTypeID" binding:"required"`
	ParentCategoryID  *string `json:"parentCategoryID"`
	Name              string  `json:"name" binding:"required,max=100"`
	Icon              string  `json:"icon"`
	DisplayOrder      int     `json:"displayOrder"`
}

// UpdateCategoryRequest is the partial-patch input for a category.
// ParentCategoryID present-but-null detaches the category from its parent.
type UpdateCategoryRequest struct {
	ParentCategoryID NullableString `json:"parentCategoryID"`
	Name             *string        `json:"name" binding:"omitempty,max=100"`
	Icon             *string        `json:"icon"`
	DisplayOrder     *int           `json:"displayOrder"`
}

// CategoryResponse is the API shape of a category.
type CategoryResponse struct {
	CategoryID        string    `json:"categoryID"`
	TransactionTypeID string    `json:"transactionTypeID"`
	ParentCategoryID  *string   `json:"parentCategoryID,omitempty"`
	Name              string    `json:"name"`
	Icon              string    `json:"icon"`
	IsActive          bool      `json:"isActive"`
	DisplayOrder      int       `json:"displayOrder"`
	CreatedAt         time.Time `json:"createdAt"`
	LastUpdatedAt     time.Time `json:"lastUpdatedAt"`
}

// ToCategoryResponse maps a domain category to the API shape.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:        c.CategoryID,
		TransactionTypeID: c.TransactionTypeID,
		ParentCategoryID:  c.ParentCategoryID,
		Name:              c.Name,
		Icon:              c.Icon,
		IsActive:          c.IsActive,
		DisplayOrder:      c.DisplayOrder,
		CreatedAt:         c.CreatedAt,
		LastUpdatedAt:     c.LastUpdatedAt,
	}
}
