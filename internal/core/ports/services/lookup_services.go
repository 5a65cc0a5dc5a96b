package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// LookupSvcFacade exposes the seeded system lookups.
type LookupSvcFacade interface {
	ListTransactionTypes(ctx context.Context) ([]domain.TransactionType, error)
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// TransactionTypeRegistry provides in-memory access to the immutable
// transaction-type reference table loaded once at startup. The ledger engine
// reads polarity from here instead of hitting the database per operation.
type TransactionTypeRegistry interface {
	// Get returns the transaction type for an id, if known.
	Get(transactionTypeID string) (domain.TransactionType, bool)

	// All returns every transaction type ordered by display order.
	All() []domain.TransactionType
}
