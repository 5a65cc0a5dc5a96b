package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. Amount is stored positive;
// direction comes from the joined transaction type row.
type Transaction struct {
	TransactionID      string          `db:"transaction_id"`
	UserID             string          `db:"user_id"`
	TransactionTypeID  string          `db:"transaction_type_id"`
	MoneySourceID      string          `db:"money_source_id"`
	CategoryID         string          `db:"category_id"`
	ContactID          *string         `db:"contact_id"`
	Amount             decimal.Decimal `db:"amount"`
	TransactionDate    time.Time       `db:"transaction_date"`
	Description        string          `db:"description"`
	IsBorrowingForThis bool            `db:"is_borrowing_for_this"`
	IsFee              bool            `db:"is_fee"`
	ExcludeFromReport  bool            `db:"exclude_from_report"`
	AuditFields
}

// TransactionDetails carries the joined display columns for the read model.
type TransactionDetails struct {
	Transaction
	TransactionTypeName  string  `db:"transaction_type_name"`
	TransactionTypeColor string  `db:"transaction_type_color"`
	IsIncome             bool    `db:"is_income"`
	MoneySourceName      string  `db:"money_source_name"`
	MoneySourceIcon      string  `db:"money_source_icon"`
	CategoryName         string  `db:"category_name"`
	CategoryIcon         string  `db:"category_icon"`
	ContactName          *string `db:"contact_name"`
}
