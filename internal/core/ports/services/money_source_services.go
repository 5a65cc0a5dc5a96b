package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// MoneySourceSvcFacade defines money source CRUD plus the standalone
// balance-correction path (the only balance write outside the ledger engine).
type MoneySourceSvcFacade interface {
	CreateMoneySource(ctx context.Context, ownerID string, req dto.CreateMoneySourceRequest) (*domain.MoneySource, error)
	GetMoneySourceByID(ctx context.Context, ownerID string, moneySourceID string) (*domain.MoneySource, error)
	ListMoneySources(ctx context.Context, ownerID string, includeInactive bool) ([]domain.MoneySource, error)
	UpdateMoneySource(ctx context.Context, ownerID string, moneySourceID string, req dto.UpdateMoneySourceRequest) (*domain.MoneySource, error)
	CorrectBalance(ctx context.Context, ownerID string, moneySourceID string, req dto.CorrectBalanceRequest) (*domain.MoneySource, error)
	DeactivateMoneySource(ctx context.Context, ownerID string, moneySourceID string) error
}
