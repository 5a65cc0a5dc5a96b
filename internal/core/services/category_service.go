package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
)

var (
	// ErrCategoryDepth is returned when a write would create a category tree
	// deeper than two levels.
	ErrCategoryDepth = errors.New("category cannot have grandchildren")

	// ErrCategoryTypeMismatch is returned when a child category's transaction
	// type differs from its parent's.
	ErrCategoryTypeMismatch = errors.New("category and parent must share the same transaction type")
)

// categoryService provides category CRUD with the two-level tree rule.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
	typeRegistry portssvc.TransactionTypeRegistry
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, typeRegistry portssvc.TransactionTypeRegistry) portssvc.CategorySvcFacade {
	return &categoryService{
		categoryRepo: categoryRepo,
		typeRegistry: typeRegistry,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory implements portssvc.CategorySvcFacade.
func (s *categoryService) CreateCategory(ctx context.Context, ownerID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, ok := s.typeRegistry.Get(req.TransactionTypeID); !ok {
		return nil, fmt.Errorf("%w: transactionType", apperrors.ErrInvalidReference)
	}

	if req.ParentCategoryID != nil {
		if err := s.validateParent(ctx, ownerID, *req.ParentCategoryID, req.TransactionTypeID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID:        uuid.NewString(),
		UserID:            ownerID,
		TransactionTypeID: req.TransactionTypeID,
		ParentCategoryID:  req.ParentCategoryID,
		Name:              req.Name,
		Icon:              req.Icon,
		IsActive:          true,
		DisplayOrder:      req.DisplayOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

// GetCategoryByID implements portssvc.CategorySvcFacade.
func (s *categoryService) GetCategoryByID(ctx context.Context, ownerID string, categoryID string) (*domain.Category, error) {
	return s.loadOwnedCategory(ctx, ownerID, categoryID)
}

// ListCategories implements portssvc.CategorySvcFacade.
func (s *categoryService) ListCategories(ctx context.Context, ownerID string, transactionTypeID *string, includeInactive bool) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategoriesByUser(ctx, ownerID, transactionTypeID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory implements portssvc.CategorySvcFacade.
func (s *categoryService) UpdateCategory(ctx context.Context, ownerID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.loadOwnedCategory(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.ParentCategoryID.Present {
		if !req.ParentCategoryID.Valid {
			category.ParentCategoryID = nil
		} else {
			parentID := req.ParentCategoryID.Value
			if parentID == categoryID {
				return nil, fmt.Errorf("%w: category cannot be its own parent", apperrors.ErrValidation)
			}
			// Gaining a parent is only allowed if this category has no
			// children of its own; otherwise the tree would go three deep.
			hasChildren, err := s.categoryRepo.HasChildCategories(ctx, categoryID)
			if err != nil {
				return nil, fmt.Errorf("failed to check child categories: %w", err)
			}
			if hasChildren {
				return nil, fmt.Errorf("%w", ErrCategoryDepth)
			}
			if err := s.validateParent(ctx, ownerID, parentID, category.TransactionTypeID); err != nil {
				return nil, err
			}
			category.ParentCategoryID = &parentID
		}
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}

	category.LastUpdatedAt = time.Now().UTC()
	category.LastUpdatedBy = ownerID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeactivateCategory implements portssvc.CategorySvcFacade.
func (s *categoryService) DeactivateCategory(ctx context.Context, ownerID string, categoryID string) error {
	if _, err := s.loadOwnedCategory(ctx, ownerID, categoryID); err != nil {
		return err
	}
	return s.categoryRepo.DeactivateCategory(ctx, categoryID, ownerID, time.Now().UTC())
}

// validateParent enforces the two-level tree rule: the parent must exist,
// belong to the owner, have no parent itself, and share the transaction type.
func (s *categoryService) validateParent(ctx context.Context, ownerID, parentID, transactionTypeID string) error {
	parent, err := s.categoryRepo.FindCategoryByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: parentCategory", apperrors.ErrInvalidReference)
		}
		return fmt.Errorf("failed to resolve parent category %s: %w", parentID, err)
	}
	if parent.UserID != ownerID {
		return fmt.Errorf("%w: parentCategory", apperrors.ErrInvalidReference)
	}
	if !parent.IsActive {
		return fmt.Errorf("%w: parentCategory", apperrors.ErrInactiveReference)
	}
	if parent.ParentCategoryID != nil {
		return ErrCategoryDepth
	}
	if parent.TransactionTypeID != transactionTypeID {
		return ErrCategoryTypeMismatch
	}
	return nil
}

func (s *categoryService) loadOwnedCategory(ctx context.Context, ownerID, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	if category.UserID != ownerID {
		return nil, apperrors.ErrNotFound
	}
	return category, nil
}
