package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMoneySourceRequest is the input for creating a money source.
// InitialBalance seeds the cached balance; after that, only the ledger engine
// and the correction endpoint touch it.
type CreateMoneySourceRequest struct {
	AccountTypeID  string          `json:"accountTypeID" binding:"required"`
	Name           string          `json:"name" binding:"required,max=100"`
	Icon           string          `json:"icon"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,len=3"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// UpdateMoneySourceRequest is the partial-patch input for money source
// display fields. Balance is deliberately not patchable here.
type UpdateMoneySourceRequest struct {
	AccountTypeID *string `json:"accountTypeID"`
	Name          *string `json:"name" binding:"omitempty,max=100"`
	Icon          *string `json:"icon"`
}

// CorrectBalanceRequest overwrites the cached balance outside the ledger
// engine. This is the standalone correction path, not a ledger operation.
type CorrectBalanceRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

// MoneySourceResponse is the API shape of a money source.
type MoneySourceResponse struct {
	MoneySourceID string          `json:"moneySourceID"`
	AccountTypeID string          `json:"accountTypeID"`
	Name          string          `json:"name"`
	Icon          string          `json:"icon"`
	Balance       decimal.Decimal `json:"balance"`
	CurrencyCode  string          `json:"currencyCode"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToMoneySourceResponse maps a domain money source to the API shape.
func ToMoneySourceResponse(s *domain.MoneySource) MoneySourceResponse {
	return MoneySourceResponse{
		MoneySourceID: s.MoneySourceID,
		AccountTypeID: s.AccountTypeID,
		Name:          s.Name,
		Icon:          s.Icon,
		Balance:       s.Balance,
		CurrencyCode:  s.CurrencyCode,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}
