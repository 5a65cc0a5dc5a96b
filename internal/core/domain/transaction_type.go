package domain

// TransactionType is a system lookup defining a kind of money movement
// (expense, income, lend, borrow). IsIncome carries the polarity: it decides
// whether transactions of this type increase or decrease the referenced money
// source's balance. Seeded by migration, immutable at runtime.
type TransactionType struct {
	TransactionTypeID string `json:"transactionTypeID"`
	Name              string `json:"name"`
	Color             string `json:"color"`
	IsIncome          bool   `json:"isIncome"`
	DisplayOrder      int    `json:"displayOrder"`
}
