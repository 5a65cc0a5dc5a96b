package mapping

import (
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/models"
)

// ToModelMoneySource converts a domain MoneySource to a model MoneySource
func ToModelMoneySource(d domain.MoneySource) models.MoneySource {
	return models.MoneySource{
		MoneySourceID: d.MoneySourceID,
		UserID:        d.UserID,
		AccountTypeID: d.AccountTypeID,
		Name:          d.Name,
		Icon:          d.Icon,
		Balance:       d.Balance,
		CurrencyCode:  d.CurrencyCode,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMoneySource converts a model MoneySource to a domain MoneySource
func ToDomainMoneySource(m models.MoneySource) domain.MoneySource {
	return domain.MoneySource{
		MoneySourceID: m.MoneySourceID,
		UserID:        m.UserID,
		AccountTypeID: m.AccountTypeID,
		Name:          m.Name,
		Icon:          m.Icon,
		Balance:       m.Balance,
		CurrencyCode:  m.CurrencyCode,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMoneySourceSlice converts a slice of model MoneySources to a slice of domain MoneySources
func ToDomainMoneySourceSlice(ms []models.MoneySource) []domain.MoneySource {
	ds := make([]domain.MoneySource, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMoneySource(m)
	}
	return ds
}
