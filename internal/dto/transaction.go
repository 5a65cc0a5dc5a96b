package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the input for the ledger create operation.
type CreateTransactionRequest struct {
	TransactionTypeID  string          `json:"transactionTypeID" binding:"required"`
	MoneySourceID      string          `json:"moneySourceID" binding:"required"`
	CategoryID         string          `json:"categoryID" binding:"required"`
	ContactID          *string         `json:"contactID"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate    time.Time       `json:"transactionDate" binding:"required"`
	Description        string          `json:"description"`
	IsBorrowingForThis bool            `json:"isBorrowingForThis"`
	IsFee              bool            `json:"isFee"`
	ExcludeFromReport  bool            `json:"excludeFromReport"`
}

// UpdateTransactionRequest is the partial-patch input for the ledger update
// operation. Nil pointer fields are left unchanged. ContactID present-but-null
// clears the contact; absent leaves it untouched.
type UpdateTransactionRequest struct {
	TransactionTypeID  *string          `json:"transactionTypeID"`
	MoneySourceID      *string          `json:"moneySourceID"`
	CategoryID         *string          `json:"categoryID"`
	ContactID          NullableString   `json:"contactID"`
	Amount             *decimal.Decimal `json:"amount"`
	TransactionDate    *time.Time       `json:"transactionDate"`
	Description        *string          `json:"description"`
	IsBorrowingForThis *bool            `json:"isBorrowingForThis"`
	IsFee              *bool            `json:"isFee"`
	ExcludeFromReport  *bool            `json:"excludeFromReport"`
}

// TransactionResponse is the read-model projection returned by the API.
type TransactionResponse struct {
	TransactionID        string          `json:"transactionID"`
	TransactionTypeID    string          `json:"transactionTypeID"`
	TransactionTypeName  string          `json:"transactionTypeName"`
	TransactionTypeColor string          `json:"transactionTypeColor"`
	IsIncome             bool            `json:"isIncome"`
	MoneySourceID        string          `json:"moneySourceID"`
	MoneySourceName      string          `json:"moneySourceName"`
	MoneySourceIcon      string          `json:"moneySourceIcon"`
	CategoryID           string          `json:"categoryID"`
	CategoryName         string          `json:"categoryName"`
	CategoryIcon         string          `json:"categoryIcon"`
	ContactID            *string         `json:"contactID,omitempty"`
	ContactName          *string         `json:"contactName,omitempty"`
	Amount               decimal.Decimal `json:"amount"`
	TransactionDate      time.Time       `json:"transactionDate"`
	Description          string          `json:"description"`
	IsBorrowingForThis   bool            `json:"isBorrowingForThis"`
	IsFee                bool            `json:"isFee"`
	ExcludeFromReport    bool            `json:"excludeFromReport"`
	CreatedAt            time.Time       `json:"createdAt"`
	LastUpdatedAt        time.Time       `json:"lastUpdatedAt"`
}

// ToTransactionResponse maps a domain projection to the API response shape.
func ToTransactionResponse(d *domain.TransactionDetails) TransactionResponse {
	return TransactionResponse{
		TransactionID:        d.TransactionID,
		TransactionTypeID:    d.TransactionTypeID,
		TransactionTypeName:  d.TransactionTypeName,
		TransactionTypeColor: d.TransactionTypeColor,
		IsIncome:             d.IsIncome,
		MoneySourceID:        d.MoneySourceID,
		MoneySourceName:      d.MoneySourceName,
		MoneySourceIcon:      d.MoneySourceIcon,
		CategoryID:           d.CategoryID,
		CategoryName:         d.CategoryName,
		CategoryIcon:         d.CategoryIcon,
		ContactID:            d.ContactID,
		ContactName:          d.ContactName,
		Amount:               d.Amount,
		TransactionDate:      d.TransactionDate,
		Description:          d.Description,
		IsBorrowingForThis:   d.IsBorrowingForThis,
		IsFee:                d.IsFee,
		ExcludeFromReport:    d.ExcludeFromReport,
		CreatedAt:            d.CreatedAt,
		LastUpdatedAt:        d.LastUpdatedAt,
	}
}

// ToTransactionResponses maps a slice of domain projections.
func ToTransactionResponses(details []domain.TransactionDetails) []TransactionResponse {
	responses := make([]TransactionResponse, len(details))
	for i := range details {
		responses[i] = ToTransactionResponse(&details[i])
	}
	return responses
}

// ListTransactionsParams holds query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit         int        `form:"limit"`
	NextToken     *string    `form:"nextToken"`
	MoneySourceID *string    `form:"moneySourceID"`
	CategoryID    *string    `form:"categoryID"`
	DateFrom      *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo        *time.Time `form:"dateTo" time_format:"2006-01-02"`
}

// ListTransactionsResponse is a page of transactions plus the next cursor.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
