package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

type CategoryServiceSuite struct {
	suite.Suite
	ctx          context.Context
	categoryRepo *MockCategoryRepository
	svc          portssvc.CategorySvcFacade
}

func (s *CategoryServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.categoryRepo = new(MockCategoryRepository)
	s.svc = services.NewCategoryService(s.categoryRepo, newTestRegistry(s.T()))
}

func (s *CategoryServiceSuite) rootCategory(id, typeID string) *domain.Category {
	return &domain.Category{
		CategoryID:        id,
		UserID:            testOwnerID,
		TransactionTypeID: typeID,
		Name:              "Food",
		IsActive:          true,
	}
}

func (s *CategoryServiceSuite) TestCreateRootCategory() {
	s.categoryRepo.On("SaveCategory", mock.Anything, mock.MatchedBy(func(c domain.Category) bool {
		return c.UserID == testOwnerID && c.TransactionTypeID == "expense" && c.IsActive && c.ParentCategoryID == nil
	})).Return(nil)

	category, err := s.svc.CreateCategory(s.ctx, testOwnerID, dto.CreateCategoryRequest{
		TransactionTypeID: "expense",
		Name:              "Food",
	})

	s.NoError(err)
	s.NotEmpty(category.CategoryID)
	s.categoryRepo.AssertExpectations(s.T())
}

func (s *CategoryServiceSuite) TestCreateChildUnderRootParent() {
	s.categoryRepo.On("FindCategoryByID", mock.Anything, "parent-1").Return(s.rootCategory("parent-1", "expense"), nil)
	s.categoryRepo.On("SaveCategory", mock.Anything, mock.Anything).Return(nil)

	parentID := "parent-1"
	category, err := s.svc.CreateCategory(s.ctx, testOwnerID, dto.CreateCategoryRequest{
		TransactionTypeID: "expense",
		ParentCategoryID:  &parentID,
		Name:              "Groceries",
	})

	s.NoError(err)
	s.Equal(&parentID, category.ParentCategoryID)
}

func (s *CategoryServiceSuite) TestCreateGrandchildIsRejected() {
	grandparentID := "grandparent-1"
	parent := s.rootCategory("parent-1", "expense")
	parent.ParentCategoryID = &grandparentID
	s.categoryRepo.On("FindCategoryByID", mock.Anything, "parent-1").Return(parent, nil)

	parentID := "parent-1"
	_, err := s.svc.CreateCategory(s.ctx, testOwnerID, dto.CreateCategoryRequest{
		TransactionTypeID: "expense",
		ParentCategoryID:  &parentID,
		Name:              "Too deep",
	})

	s.ErrorIs(err, services.ErrCategoryDepth)
	s.categoryRepo.AssertNotCalled(s.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (s *CategoryServiceSuite) TestCreateChildTypeMismatchIsRejected() {
	s.categoryRepo.On("FindCategoryByID", mock.Anything, "parent-1").Return(s.rootCategory("parent-1", "income"), nil)

	parentID := "parent-1"
	_, err := s.svc.CreateCategory(s.ctx, testOwnerID, dto.CreateCategoryRequest{
		TransactionTypeID: "expense",
		ParentCategoryID:  &parentID,
		Name:              "Salary",
	})

	s.ErrorIs(err, services.ErrCategoryTypeMismatch)
	s.categoryRepo.AssertNotCalled(s.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (s *CategoryServiceSuite) TestCreateUnknownTypeIsInvalidReference() {
	_, err := s.svc.CreateCategory(s.ctx, testOwnerID, dto.CreateCategoryRequest{
		TransactionTypeID: "transfer",
		Name:              "Misc",
	})

	s.ErrorIs(err, apperrors.ErrInvalidReference)
}

func (s *CategoryServiceSuite) TestCreateForeignParentIsInvalidReference() {
	parent := s.rootCategory("parent-1", "expense")
	parent.UserID = "someone-else"
	s.categoryRepo.On("FindCategoryByID", mock.Anything, "parent-1").Return(parent, nil)

	parentID := "parent-1"
	_, err := s.svc.CreateCategory(s.ctx, testOwnerID, dto.CreateCategoryRequest{
		TransactionTypeID: "expense",
		ParentCategoryID:  &parentID,
		Name:              "Groceries",
	})

	s.ErrorIs(err, apperrors.ErrInvalidReference)
}

func (s *CategoryServiceSuite) TestUpdateAttachParentRejectedWhenCategoryHasChildren() {
	s.categoryRepo.On("FindCategoryByID", mock.Anything, "cat-1").Return(s.rootCategory("cat-1", "expense"), nil)
	s.categoryRepo.On("HasChildCategories", mock.Anything, "cat-1").Return(true, nil)

	_, err := s.svc.UpdateCategory(s.ctx, testOwnerID, "cat-1", dto.UpdateCategoryRequest{
		ParentCategoryID: dto.NullableString{Present: true, Valid: true, Value: "parent-1"},
	})

	s.ErrorIs(err, services.ErrCategoryDepth)
	s.categoryRepo.AssertNotCalled(s.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func (s *CategoryServiceSuite) TestUpdateSelfParentIsRejected() {
	s.categoryRepo.On("FindCategoryByID", mock.Anything, "cat-1").Return(s.rootCategory("cat-1", "expense"), nil)

	_, err := s.svc.UpdateCategory(s.ctx, testOwnerID, "cat-1", dto.UpdateCategoryRequest{
		ParentCategoryID: dto.NullableString{Present: true, Valid: true, Value: "cat-1"},
	})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *CategoryServiceSuite) TestUpdateExplicitNullDetachesParent() {
	parentID := "parent-1"
	category := s.rootCategory("cat-1", "expense")
	category.ParentCategoryID = &parentID
	s.categoryRepo.On("FindCategoryByID", mock.Anything, "cat-1").Return(category, nil)
	s.categoryRepo.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c domain.Category) bool {
		return c.ParentCategoryID == nil
	})).Return(nil)

	updated, err := s.svc.UpdateCategory(s.ctx, testOwnerID, "cat-1", dto.UpdateCategoryRequest{
		ParentCategoryID: dto.NullableString{Present: true, Valid: false},
	})

	s.NoError(err)
	s.Nil(updated.ParentCategoryID)
	s.categoryRepo.AssertExpectations(s.T())
}

func (s *CategoryServiceSuite) TestUpdateAbsentParentFieldLeavesParentUntouched() {
	parentID := "parent-1"
	category := s.rootCategory("cat-1", "expense")
	category.ParentCategoryID = &parentID
	s.categoryRepo.On("FindCategoryByID", mock.Anything, "cat-1").Return(category, nil)
	s.categoryRepo.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c domain.Category) bool {
		return c.ParentCategoryID != nil && *c.ParentCategoryID == parentID && c.Name == "Dining"
	})).Return(nil)

	newName := "Dining"
	updated, err := s.svc.UpdateCategory(s.ctx, testOwnerID, "cat-1", dto.UpdateCategoryRequest{Name: &newName})

	s.NoError(err)
	s.Equal(&parentID, updated.ParentCategoryID)
	s.categoryRepo.AssertExpectations(s.T())
}

func (s *CategoryServiceSuite) TestUpdateForeignCategoryIsNotFound() {
	category := s.rootCategory("cat-1", "expense")
	category.UserID = "someone-else"
	s.categoryRepo.On("FindCategoryByID", mock.Anything, "cat-1").Return(category, nil)

	_, err := s.svc.UpdateCategory(s.ctx, testOwnerID, "cat-1", dto.UpdateCategoryRequest{})

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *CategoryServiceSuite) TestDeactivateCategory() {
	s.categoryRepo.On("FindCategoryByID", mock.Anything, "cat-1").Return(s.rootCategory("cat-1", "expense"), nil)
	s.categoryRepo.On("DeactivateCategory", mock.Anything, "cat-1", testOwnerID, mock.Anything).Return(nil)

	err := s.svc.DeactivateCategory(s.ctx, testOwnerID, "cat-1")

	s.NoError(err)
	s.categoryRepo.AssertExpectations(s.T())
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceSuite))
}
