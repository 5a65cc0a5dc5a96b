package dto

import "github.com/fintrackhq/fintrack_backend/internal/core/domain"

// TransactionTypeResponse is the API shape of a transaction type.
type TransactionTypeResponse struct {
	TransactionTypeID string `json:"transactionTypeID"`
	Name              string `json:"name"`
	Color             string `json:"color"`
	IsIncome          bool   `json:"isIncome"`
	DisplayOrder      int    `json:"displayOrder"`
}

// ToTransactionTypeResponses maps the lookup slice to the API shape.
func ToTransactionTypeResponses(types []domain.TransactionType) []TransactionTypeResponse {
	out := make([]TransactionTypeResponse, len(types))
	for i, t := range types {
		out[i] = TransactionTypeResponse{
			TransactionTypeID: t.TransactionTypeID,
			Name:              t.Name,
			Color:             t.Color,
			IsIncome:          t.IsIncome,
			DisplayOrder:      t.DisplayOrder,
		}
	}
	return out
}

// AccountTypeResponse is the API shape of an account type.
type AccountTypeResponse struct {
	AccountTypeID string `json:"accountTypeID"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	DisplayOrder  int    `json:"displayOrder"`
}

// ToAccountTypeResponses maps the lookup slice to the API shape.
func ToAccountTypeResponses(types []domain.AccountType) []AccountTypeResponse {
	out := make([]AccountTypeResponse, len(types))
	for i, t := range types {
		out[i] = AccountTypeResponse{
			AccountTypeID: t.AccountTypeID,
			Name:          t.Name,
			Icon:          t.Icon,
			DisplayOrder:  t.DisplayOrder,
		}
	}
	return out
}

// CurrencyResponse is the API shape of a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
}

// ToCurrencyResponses maps the lookup slice to the API shape.
func ToCurrencyResponses(currencies []domain.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		out[i] = CurrencyResponse{
			CurrencyCode: c.CurrencyCode,
			Symbol:       c.Symbol,
			Name:         c.Name,
			Precision:    c.Precision,
		}
	}
	return out
}
