package pgsql

import (
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories. The transaction
// repository gets the money source repository so that ledger writes can lock
// and adjust balances inside their own database transaction.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	lookupRepo := newPgxLookupRepository(dbPool)
	moneySourceRepo := newPgxMoneySourceRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	contactRepo := newPgxContactRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, moneySourceRepo)

	return &portsrepo.RepositoryProvider{
		UserRepo:        userRepo,
		LookupRepo:      lookupRepo,
		MoneySourceRepo: moneySourceRepo,
		CategoryRepo:    categoryRepo,
		ContactRepo:     contactRepo,
		TransactionRepo: transactionRepo,
	}
}
