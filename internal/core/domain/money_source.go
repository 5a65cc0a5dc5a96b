package domain

import "github.com/shopspring/decimal"

// MoneySource represents a user's account/wallet/card.
//
// Balance is a cached, derived quantity: it must always equal the sum of
// signed transaction amounts applied to it since inception, ignoring deleted
// transactions. It is written only by the ledger engine's atomic units and by
// the explicit balance-correction path; it is never recomputed on read.
type MoneySource struct {
	MoneySourceID string          `json:"moneySourceID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // Owner
	AccountTypeID string          `json:"accountTypeID"` // FK -> account_types
	Name          string          `json:"name"`
	Icon          string          `json:"icon"`
	Balance       decimal.Decimal `json:"balance"` // fixed-point, 2 fractional digits
	CurrencyCode  string          `json:"currencyCode"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}
