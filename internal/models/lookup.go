package models

// TransactionType mirrors the transaction_types lookup table (seeded,
// read-only at runtime).
type TransactionType struct {
	TransactionTypeID string `db:"transaction_type_id"`
	Name              string `db:"name"`
	Color             string `db:"color"`
	IsIncome          bool   `db:"is_income"`
	DisplayOrder      int    `db:"display_order"`
}

// AccountType mirrors the account_types lookup table.
type AccountType struct {
	AccountTypeID string `db:"account_type_id"`
	Name          string `db:"name"`
	Icon          string `db:"icon"`
	DisplayOrder  int    `db:"display_order"`
}

// Currency mirrors the currencies lookup table.
type Currency struct {
	CurrencyCode string `db:"currency_code"`
	Symbol       string `db:"symbol"`
	Name         string `db:"name"`
	Precision    int    `db:"precision"`
}
