package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsFilter narrows transaction listing.
type ListTransactionsFilter struct {
	MoneySourceID *string
	CategoryID    *string
	DateFrom      *time.Time
	DateTo        *time.Time
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionDetailsByID retrieves a transaction joined with its
	// denormalized display fields.
	FindTransactionDetailsByID(ctx context.Context, transactionID string) (*domain.TransactionDetails, error)

	// ListTransactionDetailsByUser retrieves a paginated list of transaction
	// details for a user using token-based pagination. It returns the
	// transactions, a token for the next page, and an error.
	ListTransactionDetailsByUser(ctx context.Context, userID string, filter ListTransactionsFilter, limit int, nextToken *string) ([]domain.TransactionDetails, *string, error)
}

// TransactionWriter defines the ledger engine's atomic write operations.
// Each call is one atomic unit: the transaction row mutation and every
// balance delta in balanceChanges commit together or not at all.
type TransactionWriter interface {
	// SaveTransaction inserts a transaction row and applies the balance
	// deltas within one database transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error

	// UpdateTransaction replaces a transaction row and applies the balance
	// deltas (rollback on the original source, reapply on the final source)
	// within one database transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error

	// DeleteTransaction removes a transaction row and applies the rollback
	// delta within one database transaction.
	DeleteTransaction(ctx context.Context, transactionID string, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with
// transaction capabilities.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
