package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/models"
	"github.com/fintrackhq/fintrack_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLookupRepository struct {
	pool *pgxpool.Pool
}

// newPgxLookupRepository creates a new repository for the seeded lookup tables.
func newPgxLookupRepository(pool *pgxpool.Pool) portsrepo.LookupRepositoryFacade {
	return &PgxLookupRepository{pool: pool}
}

// Ensure PgxLookupRepository implements portsrepo.LookupRepositoryFacade
var _ portsrepo.LookupRepositoryFacade = (*PgxLookupRepository)(nil)

// ListTransactionTypes retrieves all transaction types ordered by display order.
func (r *PgxLookupRepository) ListTransactionTypes(ctx context.Context) ([]domain.TransactionType, error) {
	query := `
		SELECT transaction_type_id, name, color, is_income, display_order
		FROM transaction_types
		ORDER BY display_order;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction types: %w", err)
	}
	defer rows.Close()

	types := []domain.TransactionType{}
	for rows.Next() {
		var m models.TransactionType
		if err := rows.Scan(&m.TransactionTypeID, &m.Name, &m.Color, &m.IsIncome, &m.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan transaction type row: %w", err)
		}
		types = append(types, mapping.ToDomainTransactionType(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction type rows: %w", err)
	}
	return types, nil
}

// ListAccountTypes retrieves all account types ordered by display order.
func (r *PgxLookupRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	query := `
		SELECT account_type_id, name, icon, display_order
		FROM account_types
		ORDER BY display_order;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query account types: %w", err)
	}
	defer rows.Close()

	types := []domain.AccountType{}
	for rows.Next() {
		var m models.AccountType
		if err := rows.Scan(&m.AccountTypeID, &m.Name, &m.Icon, &m.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan account type row: %w", err)
		}
		types = append(types, mapping.ToDomainAccountType(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account type rows: %w", err)
	}
	return types, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxLookupRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_code, symbol, name, precision
		FROM currencies
		ORDER BY currency_code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies := []domain.Currency{}
	for rows.Next() {
		var m models.Currency
		if err := rows.Scan(&m.CurrencyCode, &m.Symbol, &m.Name, &m.Precision); err != nil {
			return nil, fmt.Errorf("failed to scan currency row: %w", err)
		}
		currencies = append(currencies, mapping.ToDomainCurrency(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currency rows: %w", err)
	}
	return currencies, nil
}

// FindAccountTypeByID retrieves a single account type.
func (r *PgxLookupRepository) FindAccountTypeByID(ctx context.Context, accountTypeID string) (*domain.AccountType, error) {
	query := `
		SELECT account_type_id, name, icon, display_order
		FROM account_types
		WHERE account_type_id = $1;
	`
	var m models.AccountType
	err := r.pool.QueryRow(ctx, query, accountTypeID).Scan(&m.AccountTypeID, &m.Name, &m.Icon, &m.DisplayOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account type by ID %s: %w", accountTypeID, err)
	}
	d := mapping.ToDomainAccountType(m)
	return &d, nil
}

// FindCurrencyByCode retrieves a single currency.
func (r *PgxLookupRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `
		SELECT currency_code, symbol, name, precision
		FROM currencies
		WHERE currency_code = $1;
	`
	var m models.Currency
	err := r.pool.QueryRow(ctx, query, currencyCode).Scan(&m.CurrencyCode, &m.Symbol, &m.Name, &m.Precision)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}
	d := mapping.ToDomainCurrency(m)
	return &d, nil
}
