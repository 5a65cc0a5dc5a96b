package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single money movement against one money source.
//
// Amount is always positive; the direction is carried entirely by the
// referenced transaction type's IsIncome polarity, never by the sign of
// Amount. Downstream reporting relies on this, so signed amounts must not be
// stored.
type Transaction struct {
	TransactionID      string          `json:"transactionID"` // Primary Key (UUID)
	UserID             string          `json:"userID"`        // Owner
	TransactionTypeID  string          `json:"transactionTypeID"`
	MoneySourceID      string          `json:"moneySourceID"`
	CategoryID         string          `json:"categoryID"`
	ContactID          *string         `json:"contactID,omitempty"` // Nullable counterparty
	Amount             decimal.Decimal `json:"amount"`              // > 0 always
	TransactionDate    time.Time       `json:"transactionDate"`
	Description        string          `json:"description"`
	IsBorrowingForThis bool            `json:"isBorrowingForThis"`
	IsFee              bool            `json:"isFee"`
	ExcludeFromReport  bool            `json:"excludeFromReport"`
	AuditFields
}

// TransactionDetails is the read-model projection of a transaction joined
// with denormalized display fields. It plays no part in the write invariants.
type TransactionDetails struct {
	Transaction
	TransactionTypeName  string  `json:"transactionTypeName"`
	TransactionTypeColor string  `json:"transactionTypeColor"`
	IsIncome             bool    `json:"isIncome"`
	MoneySourceName      string  `json:"moneySourceName"`
	MoneySourceIcon      string  `json:"moneySourceIcon"`
	CategoryName         string  `json:"categoryName"`
	CategoryIcon         string  `json:"categoryIcon"`
	ContactName          *string `json:"contactName,omitempty"`
}
