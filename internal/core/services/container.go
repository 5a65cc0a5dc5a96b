package services

import (
	"context"
	"fmt"

	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
)

// NewServiceProvider wires all services from the repository provider and the
// change notifier. The transaction-type registry is loaded once here.
func NewServiceProvider(ctx context.Context, repos *portsrepo.RepositoryProvider, notifier portssvc.ChangeNotifier) (*portssvc.ServiceProvider, error) {
	typeRegistry, err := NewTransactionTypeRegistry(ctx, repos.LookupRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction type registry: %w", err)
	}

	return &portssvc.ServiceProvider{
		UserSvc:        NewUserService(repos.UserRepo),
		LookupSvc:      NewLookupService(repos.LookupRepo, typeRegistry),
		MoneySourceSvc: NewMoneySourceService(repos.MoneySourceRepo, repos.LookupRepo),
		CategorySvc:    NewCategoryService(repos.CategoryRepo, typeRegistry),
		ContactSvc:     NewContactService(repos.ContactRepo),
		TransactionSvc: NewTransactionService(repos.TransactionRepo, repos.MoneySourceRepo, repos.CategoryRepo, repos.ContactRepo, typeRegistry, notifier),
	}, nil
}
