package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// CategorySvcFacade defines category CRUD. Write operations enforce the
// two-level tree rule and the parent/child transaction-type match.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, ownerID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, ownerID string, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, ownerID string, transactionTypeID *string, includeInactive bool) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, ownerID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeactivateCategory(ctx context.Context, ownerID string, categoryID string) error
}
