package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// TransactionSvcFacade defines the ledger engine's service interface.
// Every mutation validates all references first, then persists the
// transaction row and the affected money-source balance(s) as one atomic
// unit, then emits a best-effort change notification.
type TransactionSvcFacade interface {
	// CreateTransaction creates a transaction and applies its signed delta to
	// the referenced money source's balance.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.TransactionDetails, error)

	// UpdateTransaction applies a partial patch: the original delta is rolled
	// back on the original money source and the new delta applied to the
	// final one, both inside the same atomic unit.
	UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.TransactionDetails, error)

	// DeleteTransaction removes a transaction and rolls its delta back.
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error

	// GetTransactionByID retrieves the read-model projection.
	GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.TransactionDetails, error)

	// ListTransactions retrieves a paginated list of projections.
	ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}
