package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
	"github.com/fintrackhq/fintrack_backend/internal/utils/ledger"
)

// transactionService is the ledger engine: it orchestrates create, update and
// delete of transactions together with the balance mutation of the affected
// money source(s).
//
// Every mutation follows the same shape: validate all references (no side
// effects), compute signed deltas, then hand the row mutation and the
// balance-change map to the repository, which applies them as one database
// transaction with the money-source rows locked. A change notification is
// emitted after commit, best-effort.
type transactionService struct {
	txnRepo      portsrepo.TransactionRepositoryFacade
	sourceRepo   portsrepo.MoneySourceRepositoryFacade
	typeRegistry portssvc.TransactionTypeRegistry
	resolver     *referenceResolver
	notifier     portssvc.ChangeNotifier
}

// NewTransactionService creates the ledger engine service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	sourceRepo portsrepo.MoneySourceRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	contactRepo portsrepo.ContactRepositoryFacade,
	typeRegistry portssvc.TransactionTypeRegistry,
	notifier portssvc.ChangeNotifier,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:      txnRepo,
		sourceRepo:   sourceRepo,
		typeRegistry: typeRegistry,
		resolver:     newReferenceResolver(typeRegistry, sourceRepo, categoryRepo, contactRepo),
		notifier:     notifier,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction implements portssvc.TransactionSvcFacade.
func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.TransactionDetails, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	refs, err := s.resolver.ResolveAll(ctx, ownerID, req.TransactionTypeID, req.MoneySourceID, req.CategoryID, req.ContactID)
	if err != nil {
		return nil, err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, req.Amount.String())
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:      uuid.NewString(),
		UserID:             ownerID,
		TransactionTypeID:  req.TransactionTypeID,
		MoneySourceID:      req.MoneySourceID,
		CategoryID:         req.CategoryID,
		ContactID:          req.ContactID,
		Amount:             req.Amount,
		TransactionDate:    req.TransactionDate,
		Description:        req.Description,
		IsBorrowingForThis: req.IsBorrowingForThis,
		IsFee:              req.IsFee,
		ExcludeFromReport:  req.ExcludeFromReport,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	balanceChanges := map[string]decimal.Decimal{
		req.MoneySourceID: ledger.Delta(req.Amount, refs.TransactionType.IsIncome),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn, balanceChanges); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("money_source_id", txn.MoneySourceID))
	s.notifyChange(ctx, ownerID, txn.TransactionID, domain.LedgerActionCreated)

	return s.projectDetails(txn, refs)
}

// UpdateTransaction implements portssvc.TransactionSvcFacade.
//
// The original delta is rolled back against the original money source and the
// final delta applied to the final money source as two entries in the
// balance-change map. When the source is unchanged the two deltas accumulate
// on one row (netting to zero for no-op edits); when it changed they touch
// two independent rows inside the same atomic unit. A single precomputed net
// diff would be wrong in the cross-source case.
func (s *transactionService) UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.TransactionDetails, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.loadOwnedTransaction(ctx, ownerID, transactionID)
	if err != nil {
		return nil, err
	}

	originalType, ok := s.typeRegistry.Get(existing.TransactionTypeID)
	if !ok {
		logger.Error("Stored transaction references unknown transaction type", slog.String("transaction_type_id", existing.TransactionTypeID))
		return nil, fmt.Errorf("%w: transaction %s has unknown type", apperrors.ErrInternal, transactionID)
	}

	// Phase one: roll back the original delta on the original source.
	balanceChanges := map[string]decimal.Decimal{
		existing.MoneySourceID: ledger.Rollback(existing.Amount, originalType.IsIncome),
	}

	updated := *existing
	finalType := originalType

	if req.TransactionTypeID != nil && *req.TransactionTypeID != existing.TransactionTypeID {
		finalType, err = s.resolver.ResolveTransactionType(*req.TransactionTypeID)
		if err != nil {
			return nil, err
		}
		updated.TransactionTypeID = *req.TransactionTypeID
	}

	if req.MoneySourceID != nil && *req.MoneySourceID != existing.MoneySourceID {
		if _, err := s.resolver.ResolveMoneySource(ctx, ownerID, *req.MoneySourceID); err != nil {
			return nil, err
		}
		updated.MoneySourceID = *req.MoneySourceID
	}

	if req.CategoryID != nil && *req.CategoryID != existing.CategoryID {
		if _, err := s.resolver.ResolveCategory(ctx, ownerID, *req.CategoryID); err != nil {
			return nil, err
		}
		updated.CategoryID = *req.CategoryID
	}

	if req.ContactID.Present {
		if !req.ContactID.Valid {
			updated.ContactID = nil
		} else if existing.ContactID == nil || *existing.ContactID != req.ContactID.Value {
			if _, err := s.resolver.ResolveContact(ctx, ownerID, req.ContactID.Value); err != nil {
				return nil, err
			}
			contactID := req.ContactID.Value
			updated.ContactID = &contactID
		}
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, req.Amount.String())
		}
		updated.Amount = *req.Amount
	}
	if req.TransactionDate != nil {
		updated.TransactionDate = *req.TransactionDate
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.IsBorrowingForThis != nil {
		updated.IsBorrowingForThis = *req.IsBorrowingForThis
	}
	if req.IsFee != nil {
		updated.IsFee = *req.IsFee
	}
	if req.ExcludeFromReport != nil {
		updated.ExcludeFromReport = *req.ExcludeFromReport
	}

	// Phase two: apply the new delta on the final source.
	newDelta := ledger.Delta(updated.Amount, finalType.IsIncome)
	balanceChanges[updated.MoneySourceID] = balanceChanges[updated.MoneySourceID].Add(newDelta)

	now := time.Now().UTC()
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = ownerID

	if err := s.txnRepo.UpdateTransaction(ctx, updated, balanceChanges); err != nil {
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	s.notifyChange(ctx, ownerID, transactionID, domain.LedgerActionUpdated)

	details, err := s.txnRepo.FindTransactionDetailsByID(ctx, transactionID)
	if err != nil {
		logger.Error("Failed to reload transaction details after update", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to reload transaction details: %w", err)
	}
	return details, nil
}

// DeleteTransaction implements portssvc.TransactionSvcFacade.
func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.loadOwnedTransaction(ctx, ownerID, transactionID)
	if err != nil {
		return err
	}

	txnType, ok := s.typeRegistry.Get(existing.TransactionTypeID)
	if !ok {
		logger.Error("Stored transaction references unknown transaction type", slog.String("transaction_type_id", existing.TransactionTypeID))
		return fmt.Errorf("%w: transaction %s has unknown type", apperrors.ErrInternal, transactionID)
	}

	balanceChanges := map[string]decimal.Decimal{
		existing.MoneySourceID: ledger.Rollback(existing.Amount, txnType.IsIncome),
	}

	now := time.Now().UTC()
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, balanceChanges, ownerID, now); err != nil {
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	s.notifyChange(ctx, ownerID, transactionID, domain.LedgerActionDeleted)
	return nil
}

// GetTransactionByID implements portssvc.TransactionSvcFacade.
func (s *transactionService) GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.TransactionDetails, error) {
	details, err := s.txnRepo.FindTransactionDetailsByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if details.UserID != ownerID {
		// Obscure existence of other users' transactions.
		return nil, apperrors.ErrNotFound
	}
	return details, nil
}

// ListTransactions implements portssvc.TransactionSvcFacade.
func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	filter := portsrepo.ListTransactionsFilter{
		MoneySourceID: params.MoneySourceID,
		CategoryID:    params.CategoryID,
		DateFrom:      params.DateFrom,
		DateTo:        params.DateTo,
	}

	details, nextToken, err := s.txnRepo.ListTransactionDetailsByUser(ctx, ownerID, filter, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(details),
		NextToken:    nextToken,
	}, nil
}

// loadOwnedTransaction fetches a transaction and verifies ownership,
// answering "not found" for both missing and foreign rows.
func (s *transactionService) loadOwnedTransaction(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn.UserID != ownerID {
		return nil, apperrors.ErrNotFound
	}
	return txn, nil
}

// notifyChange emits a ledger-changed event. Failures are logged and
// swallowed: notification delivery never affects ledger correctness.
func (s *transactionService) notifyChange(ctx context.Context, ownerID, transactionID string, action domain.LedgerAction) {
	if s.notifier == nil {
		return
	}
	event := domain.LedgerEvent{
		UserID:        ownerID,
		TransactionID: transactionID,
		Action:        action,
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.notifier.NotifyLedgerChanged(ctx, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to publish ledger change notification",
			slog.String("transaction_id", transactionID),
			slog.String("action", string(action)),
			slog.String("error", err.Error()),
		)
	}
}

// projectDetails builds the read-model projection from already-resolved
// references, avoiding a re-read right after create.
func (s *transactionService) projectDetails(txn domain.Transaction, refs *resolvedReferences) (*domain.TransactionDetails, error) {
	details := &domain.TransactionDetails{
		Transaction:          txn,
		TransactionTypeName:  refs.TransactionType.Name,
		TransactionTypeColor: refs.TransactionType.Color,
		IsIncome:             refs.TransactionType.IsIncome,
		MoneySourceName:      refs.MoneySource.Name,
		MoneySourceIcon:      refs.MoneySource.Icon,
		CategoryName:         refs.Category.Name,
		CategoryIcon:         refs.Category.Icon,
	}
	if refs.Contact != nil {
		details.ContactName = &refs.Contact.Name
	}
	return details, nil
}
