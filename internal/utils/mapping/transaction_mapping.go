package mapping

import (
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:      d.TransactionID,
		UserID:             d.UserID,
		TransactionTypeID:  d.TransactionTypeID,
		MoneySourceID:      d.MoneySourceID,
		CategoryID:         d.CategoryID,
		ContactID:          d.ContactID,
		Amount:             d.Amount,
		TransactionDate:    d.TransactionDate,
		Description:        d.Description,
		IsBorrowingForThis: d.IsBorrowingForThis,
		IsFee:              d.IsFee,
		ExcludeFromReport:  d.ExcludeFromReport,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:      m.TransactionID,
		UserID:             m.UserID,
		TransactionTypeID:  m.TransactionTypeID,
		MoneySourceID:      m.MoneySourceID,
		CategoryID:         m.CategoryID,
		ContactID:          m.ContactID,
		Amount:             m.Amount,
		TransactionDate:    m.TransactionDate,
		Description:        m.Description,
		IsBorrowingForThis: m.IsBorrowingForThis,
		IsFee:              m.IsFee,
		ExcludeFromReport:  m.ExcludeFromReport,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionDetails converts a model TransactionDetails to a domain TransactionDetails
func ToDomainTransactionDetails(m models.TransactionDetails) domain.TransactionDetails {
	return domain.TransactionDetails{
		Transaction:          ToDomainTransaction(m.Transaction),
		TransactionTypeName:  m.TransactionTypeName,
		TransactionTypeColor: m.TransactionTypeColor,
		IsIncome:             m.IsIncome,
		MoneySourceName:      m.MoneySourceName,
		MoneySourceIcon:      m.MoneySourceIcon,
		CategoryName:         m.CategoryName,
		CategoryIcon:         m.CategoryIcon,
		ContactName:          m.ContactName,
	}
}

// ToDomainTransactionDetailsSlice converts a slice of model TransactionDetails to a slice of domain TransactionDetails
func ToDomainTransactionDetailsSlice(ms []models.TransactionDetails) []domain.TransactionDetails {
	ds := make([]domain.TransactionDetails, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransactionDetails(m)
	}
	return ds
}
