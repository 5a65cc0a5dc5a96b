package mapping

import (
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:        d.CategoryID,
		UserID:            d.UserID,
		TransactionTypeID: d.TransactionTypeID,
		ParentCategoryID:  d.ParentCategoryID,
		Name:              d.Name,
		Icon:              d.Icon,
		IsActive:          d.IsActive,
		DisplayOrder:      d.DisplayOrder,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:        m.CategoryID,
		UserID:            m.UserID,
		TransactionTypeID: m.TransactionTypeID,
		ParentCategoryID:  m.ParentCategoryID,
		Name:              m.Name,
		Icon:              m.Icon,
		IsActive:          m.IsActive,
		DisplayOrder:      m.DisplayOrder,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of model Categories to a slice of domain Categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
