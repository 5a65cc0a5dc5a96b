package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
)

// moneySourceService provides money source CRUD. It never applies
// transaction deltas itself; the cached balance is written here only on
// create (opening balance) and through the explicit correction path.
type moneySourceService struct {
	sourceRepo portsrepo.MoneySourceRepositoryFacade
	lookupRepo portsrepo.LookupRepositoryFacade
}

// NewMoneySourceService creates a new MoneySourceService.
func NewMoneySourceService(sourceRepo portsrepo.MoneySourceRepositoryFacade, lookupRepo portsrepo.LookupRepositoryFacade) portssvc.MoneySourceSvcFacade {
	return &moneySourceService{
		sourceRepo: sourceRepo,
		lookupRepo: lookupRepo,
	}
}

var _ portssvc.MoneySourceSvcFacade = (*moneySourceService)(nil)

// CreateMoneySource implements portssvc.MoneySourceSvcFacade.
func (s *moneySourceService) CreateMoneySource(ctx context.Context, ownerID string, req dto.CreateMoneySourceRequest) (*domain.MoneySource, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.lookupRepo.FindAccountTypeByID(ctx, req.AccountTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: accountType", apperrors.ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to resolve account type: %w", err)
	}
	if _, err := s.lookupRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency", apperrors.ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to resolve currency: %w", err)
	}

	now := time.Now().UTC()
	source := domain.MoneySource{
		MoneySourceID: uuid.NewString(),
		UserID:        ownerID,
		AccountTypeID: req.AccountTypeID,
		Name:          req.Name,
		Icon:          req.Icon,
		Balance:       req.InitialBalance,
		CurrencyCode:  req.CurrencyCode,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.sourceRepo.SaveMoneySource(ctx, source); err != nil {
		logger.Error("Failed to save money source", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save money source: %w", err)
	}

	logger.Info("Money source created", slog.String("money_source_id", source.MoneySourceID))
	return &source, nil
}

// GetMoneySourceByID implements portssvc.MoneySourceSvcFacade.
func (s *moneySourceService) GetMoneySourceByID(ctx context.Context, ownerID string, moneySourceID string) (*domain.MoneySource, error) {
	return s.loadOwnedSource(ctx, ownerID, moneySourceID)
}

// ListMoneySources implements portssvc.MoneySourceSvcFacade.
func (s *moneySourceService) ListMoneySources(ctx context.Context, ownerID string, includeInactive bool) ([]domain.MoneySource, error) {
	sources, err := s.sourceRepo.ListMoneySourcesByUser(ctx, ownerID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list money sources: %w", err)
	}
	return sources, nil
}

// UpdateMoneySource implements portssvc.MoneySourceSvcFacade. Display fields
// only; the balance is not touchable through this path.
func (s *moneySourceService) UpdateMoneySource(ctx context.Context, ownerID string, moneySourceID string, req dto.UpdateMoneySourceRequest) (*domain.MoneySource, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	source, err := s.loadOwnedSource(ctx, ownerID, moneySourceID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.AccountTypeID != nil && *req.AccountTypeID != source.AccountTypeID {
		if _, err := s.lookupRepo.FindAccountTypeByID(ctx, *req.AccountTypeID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: accountType", apperrors.ErrInvalidReference)
			}
			return nil, fmt.Errorf("failed to resolve account type: %w", err)
		}
		source.AccountTypeID = *req.AccountTypeID
		updated = true
	}
	if req.Name != nil {
		source.Name = *req.Name
		updated = true
	}
	if req.Icon != nil {
		source.Icon = *req.Icon
		updated = true
	}

	if !updated {
		return source, nil
	}

	source.LastUpdatedAt = time.Now().UTC()
	source.LastUpdatedBy = ownerID

	if err := s.sourceRepo.UpdateMoneySource(ctx, *source); err != nil {
		logger.Error("Failed to update money source", slog.String("error", err.Error()), slog.String("money_source_id", moneySourceID))
		return nil, fmt.Errorf("failed to update money source: %w", err)
	}
	return source, nil
}

// CorrectBalance implements portssvc.MoneySourceSvcFacade. This is the
// standalone correction path: it overwrites the cached balance directly and
// deliberately bypasses the ledger engine.
func (s *moneySourceService) CorrectBalance(ctx context.Context, ownerID string, moneySourceID string, req dto.CorrectBalanceRequest) (*domain.MoneySource, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	source, err := s.loadOwnedSource(ctx, ownerID, moneySourceID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.sourceRepo.SetMoneySourceBalance(ctx, moneySourceID, req.Balance, ownerID, now); err != nil {
		logger.Error("Failed to correct money source balance", slog.String("error", err.Error()), slog.String("money_source_id", moneySourceID))
		return nil, fmt.Errorf("failed to correct balance: %w", err)
	}

	logger.Info("Money source balance corrected",
		slog.String("money_source_id", moneySourceID),
		slog.String("old_balance", source.Balance.String()),
		slog.String("new_balance", req.Balance.String()),
	)

	source.Balance = req.Balance
	source.LastUpdatedAt = now
	source.LastUpdatedBy = ownerID
	return source, nil
}

// DeactivateMoneySource implements portssvc.MoneySourceSvcFacade.
func (s *moneySourceService) DeactivateMoneySource(ctx context.Context, ownerID string, moneySourceID string) error {
	if _, err := s.loadOwnedSource(ctx, ownerID, moneySourceID); err != nil {
		return err
	}
	return s.sourceRepo.DeactivateMoneySource(ctx, moneySourceID, ownerID, time.Now().UTC())
}

func (s *moneySourceService) loadOwnedSource(ctx context.Context, ownerID, moneySourceID string) (*domain.MoneySource, error) {
	source, err := s.sourceRepo.FindMoneySourceByID(ctx, moneySourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find money source %s: %w", moneySourceID, err)
	}
	if source.UserID != ownerID {
		return nil, apperrors.ErrNotFound
	}
	return source, nil
}
