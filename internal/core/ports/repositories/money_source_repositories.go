package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// MoneySourceReader defines read operations for money source data
type MoneySourceReader interface {
	// FindMoneySourceByID retrieves a specific money source by its unique identifier.
	FindMoneySourceByID(ctx context.Context, moneySourceID string) (*domain.MoneySource, error)

	// ListMoneySourcesByUser retrieves all money sources owned by a user.
	ListMoneySourcesByUser(ctx context.Context, userID string, includeInactive bool) ([]domain.MoneySource, error)
}

// MoneySourceWriter defines write operations for money source data
type MoneySourceWriter interface {
	// SaveMoneySource persists a new money source.
	SaveMoneySource(ctx context.Context, source domain.MoneySource) error

	// UpdateMoneySource updates name, icon and account type of a money source.
	UpdateMoneySource(ctx context.Context, source domain.MoneySource) error

	// SetMoneySourceBalance overwrites the cached balance (balance-correction path only).
	SetMoneySourceBalance(ctx context.Context, moneySourceID string, balance decimal.Decimal, userID string, now time.Time) error

	// DeactivateMoneySource marks a money source as inactive.
	DeactivateMoneySource(ctx context.Context, moneySourceID string, userID string, now time.Time) error
}

// MoneySourceTransactionSupport defines the operations the ledger engine's
// atomic unit needs: locking source rows and applying balance deltas inside
// an open database transaction.
type MoneySourceTransactionSupport interface {
	// FindMoneySourcesByIDsForUpdate selects money sources and locks them
	// (SELECT ... FOR UPDATE) for the duration of the transaction.
	FindMoneySourcesByIDsForUpdate(ctx context.Context, tx pgx.Tx, moneySourceIDs []string) (map[string]domain.MoneySource, error)

	// ApplyBalanceChangesInTx applies signed deltas to the balances of
	// multiple money sources within a given transaction.
	ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// MoneySourceRepositoryFacade combines all money-source repository interfaces.
type MoneySourceRepositoryFacade interface {
	MoneySourceReader
	MoneySourceWriter
	MoneySourceTransactionSupport
}
