package repositories

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// LookupRepositoryFacade provides read access to the seeded system lookup
// tables. Nothing writes these at runtime.
type LookupRepositoryFacade interface {
	// ListTransactionTypes retrieves all transaction types ordered by display order.
	ListTransactionTypes(ctx context.Context) ([]domain.TransactionType, error)

	// ListAccountTypes retrieves all account types ordered by display order.
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)

	// ListCurrencies retrieves all currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// FindAccountTypeByID retrieves a single account type.
	FindAccountTypeByID(ctx context.Context, accountTypeID string) (*domain.AccountType, error)

	// FindCurrencyByCode retrieves a single currency.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
}
