package models

import "github.com/shopspring/decimal"

// MoneySource mirrors the money_sources table.
type MoneySource struct {
	MoneySourceID string          `db:"money_source_id"`
	UserID        string          `db:"user_id"`
	AccountTypeID string          `db:"account_type_id"`
	Name          string          `db:"name"`
	Icon          string          `db:"icon"`
	Balance       decimal.Decimal `db:"balance"`
	CurrencyCode  string          `db:"currency_code"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}
