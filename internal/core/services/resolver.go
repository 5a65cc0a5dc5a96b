package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
)

// referenceResolver checks that every entity a transaction references exists,
// belongs to the requesting user (where ownership applies) and is active.
// It performs no mutation; the ledger engine runs it before opening any
// atomic unit, so the first failure aborts with no side effect.
//
// Foreign ids resolve to an invalid-reference error, not a forbidden one, so
// the existence of other users' entities is never leaked.
type referenceResolver struct {
	typeRegistry portssvc.TransactionTypeRegistry
	sourceRepo   portsrepo.MoneySourceRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	contactRepo  portsrepo.ContactRepositoryFacade
}

// resolvedReferences bundles the entities resolved for one ledger operation.
type resolvedReferences struct {
	TransactionType domain.TransactionType
	MoneySource     domain.MoneySource
	Category        domain.Category
	Contact         *domain.Contact
}

func newReferenceResolver(
	typeRegistry portssvc.TransactionTypeRegistry,
	sourceRepo portsrepo.MoneySourceRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	contactRepo portsrepo.ContactRepositoryFacade,
) *referenceResolver {
	return &referenceResolver{
		typeRegistry: typeRegistry,
		sourceRepo:   sourceRepo,
		categoryRepo: categoryRepo,
		contactRepo:  contactRepo,
	}
}

// ResolveAll runs all four reference checks. A nil contactID is valid and
// means "no counterparty".
func (r *referenceResolver) ResolveAll(ctx context.Context, ownerID, typeID, sourceID, categoryID string, contactID *string) (*resolvedReferences, error) {
	txnType, err := r.ResolveTransactionType(typeID)
	if err != nil {
		return nil, err
	}

	source, err := r.ResolveMoneySource(ctx, ownerID, sourceID)
	if err != nil {
		return nil, err
	}

	category, err := r.ResolveCategory(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}

	refs := &resolvedReferences{
		TransactionType: txnType,
		MoneySource:     *source,
		Category:        *category,
	}

	if contactID != nil {
		contact, err := r.ResolveContact(ctx, ownerID, *contactID)
		if err != nil {
			return nil, err
		}
		refs.Contact = contact
	}

	return refs, nil
}

// ResolveTransactionType checks the id against the in-memory registry.
func (r *referenceResolver) ResolveTransactionType(typeID string) (domain.TransactionType, error) {
	txnType, ok := r.typeRegistry.Get(typeID)
	if !ok {
		return domain.TransactionType{}, fmt.Errorf("%w: transactionType", apperrors.ErrInvalidReference)
	}
	return txnType, nil
}

// ResolveMoneySource checks existence, ownership and active state.
func (r *referenceResolver) ResolveMoneySource(ctx context.Context, ownerID, sourceID string) (*domain.MoneySource, error) {
	source, err := r.sourceRepo.FindMoneySourceByID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: moneySource", apperrors.ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to resolve money source %s: %w", sourceID, err)
	}
	if source.UserID != ownerID {
		return nil, fmt.Errorf("%w: moneySource", apperrors.ErrInvalidReference)
	}
	if !source.IsActive {
		return nil, fmt.Errorf("%w: moneySource", apperrors.ErrInactiveReference)
	}
	return source, nil
}

// ResolveCategory checks existence, ownership and active state.
func (r *referenceResolver) ResolveCategory(ctx context.Context, ownerID, categoryID string) (*domain.Category, error) {
	category, err := r.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category", apperrors.ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to resolve category %s: %w", categoryID, err)
	}
	if category.UserID != ownerID {
		return nil, fmt.Errorf("%w: category", apperrors.ErrInvalidReference)
	}
	if !category.IsActive {
		return nil, fmt.Errorf("%w: category", apperrors.ErrInactiveReference)
	}
	return category, nil
}

// ResolveContact checks existence and ownership.
func (r *referenceResolver) ResolveContact(ctx context.Context, ownerID, contactID string) (*domain.Contact, error) {
	contact, err := r.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: contact", apperrors.ErrInvalidReference)
		}
		return nil, fmt.Errorf("failed to resolve contact %s: %w", contactID, err)
	}
	if contact.UserID != ownerID {
		return nil, fmt.Errorf("%w: contact", apperrors.ErrInvalidReference)
	}
	return contact, nil
}
