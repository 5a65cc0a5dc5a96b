package domain

// AccountType is a system lookup describing the kind of money source
// (cash wallet, bank account, credit card...). Seeded by migration and
// read-only at runtime.
type AccountType struct {
	AccountTypeID string `json:"accountTypeID"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	DisplayOrder  int    `json:"displayOrder"`
}
