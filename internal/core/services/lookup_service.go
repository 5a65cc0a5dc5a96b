package services

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
)

// lookupService exposes the seeded system lookups. Transaction types come
// from the in-memory registry; the rarely-read lookups go to the repository.
type lookupService struct {
	lookupRepo   portsrepo.LookupRepositoryFacade
	typeRegistry portssvc.TransactionTypeRegistry
}

// NewLookupService creates a new LookupService.
func NewLookupService(lookupRepo portsrepo.LookupRepositoryFacade, typeRegistry portssvc.TransactionTypeRegistry) portssvc.LookupSvcFacade {
	return &lookupService{
		lookupRepo:   lookupRepo,
		typeRegistry: typeRegistry,
	}
}

var _ portssvc.LookupSvcFacade = (*lookupService)(nil)

func (s *lookupService) ListTransactionTypes(ctx context.Context) ([]domain.TransactionType, error) {
	return s.typeRegistry.All(), nil
}

func (s *lookupService) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	types, err := s.lookupRepo.ListAccountTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list account types: %w", err)
	}
	return types, nil
}

func (s *lookupService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.lookupRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}
