package mapping

import (
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/models"
)

// ToDomainTransactionType converts a model TransactionType to a domain TransactionType
func ToDomainTransactionType(m models.TransactionType) domain.TransactionType {
	return domain.TransactionType{
		TransactionTypeID: m.TransactionTypeID,
		Name:              m.Name,
		Color:             m.Color,
		IsIncome:          m.IsIncome,
		DisplayOrder:      m.DisplayOrder,
	}
}

// ToDomainAccountType converts a model AccountType to a domain AccountType
func ToDomainAccountType(m models.AccountType) domain.AccountType {
	return domain.AccountType{
		AccountTypeID: m.AccountTypeID,
		Name:          m.Name,
		Icon:          m.Icon,
		DisplayOrder:  m.DisplayOrder,
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Symbol:       m.Symbol,
		Name:         m.Name,
		Precision:    m.Precision,
	}
}
