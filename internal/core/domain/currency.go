package domain

// Currency is a system lookup. No conversion logic exists anywhere in this
// backend; the code is only stored and displayed.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // ISO 4217, Primary Key
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
}
