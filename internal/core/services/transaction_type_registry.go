package services

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
)

// transactionTypeRegistry caches the seeded transaction-type rows in memory.
// The table is immutable at runtime, so one load at startup is enough; the
// ledger engine reads polarity from here on every operation.
type transactionTypeRegistry struct {
	byID    map[string]domain.TransactionType
	ordered []domain.TransactionType
}

// NewTransactionTypeRegistry loads all transaction types once and returns a
// read-only registry.
func NewTransactionTypeRegistry(ctx context.Context, lookupRepo portsrepo.LookupRepositoryFacade) (portssvc.TransactionTypeRegistry, error) {
	types, err := lookupRepo.ListTransactionTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction types: %w", err)
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("transaction_types table is empty; seed migration missing")
	}

	byID := make(map[string]domain.TransactionType, len(types))
	for _, t := range types {
		byID[t.TransactionTypeID] = t
	}

	return &transactionTypeRegistry{byID: byID, ordered: types}, nil
}

var _ portssvc.TransactionTypeRegistry = (*transactionTypeRegistry)(nil)

func (r *transactionTypeRegistry) Get(transactionTypeID string) (domain.TransactionType, bool) {
	t, ok := r.byID[transactionTypeID]
	return t, ok
}

func (r *transactionTypeRegistry) All() []domain.TransactionType {
	out := make([]domain.TransactionType, len(r.ordered))
	copy(out, r.ordered)
	return out
}
