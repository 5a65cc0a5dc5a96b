package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/models"
	"github.com/fintrackhq/fintrack_backend/internal/utils/mapping"
	"github.com/fintrackhq/fintrack_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `t.transaction_id, t.user_id, t.transaction_type_id, t.money_source_id, t.category_id, t.contact_id, t.amount, t.transaction_date, t.description, t.is_borrowing_for_this, t.is_fee, t.exclude_from_report, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by`

const transactionDetailsColumns = transactionColumns + `,
	       tt.name AS transaction_type_name, tt.color AS transaction_type_color, tt.is_income,
	       ms.name AS money_source_name, ms.icon AS money_source_icon,
	       c.name AS category_name, c.icon AS category_icon,
	       ct.name AS contact_name`

const transactionDetailsJoins = `
		FROM transactions t
		JOIN transaction_types tt ON t.transaction_type_id = tt.transaction_type_id
		JOIN money_sources ms ON t.money_source_id = ms.money_source_id
		JOIN categories c ON t.category_id = c.category_id
		LEFT JOIN contacts ct ON t.contact_id = ct.contact_id`

type PgxTransactionRepository struct {
	BaseRepository
	moneySourceRepo portsrepo.MoneySourceRepositoryFacade
}

// newPgxTransactionRepository creates a new repository for transaction data.
// The money source repository is injected so that every ledger write can lock
// and mutate cached balances inside the same database transaction.
func newPgxTransactionRepository(pool *pgxpool.Pool, moneySourceRepo portsrepo.MoneySourceRepositoryFacade) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository:  BaseRepository{Pool: pool},
		moneySourceRepo: moneySourceRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.TransactionTypeID,
		&m.MoneySourceID,
		&m.CategoryID,
		&m.ContactID,
		&m.Amount,
		&m.TransactionDate,
		&m.Description,
		&m.IsBorrowingForThis,
		&m.IsFee,
		&m.ExcludeFromReport,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanTransactionDetails(row pgx.Row) (models.TransactionDetails, error) {
	var m models.TransactionDetails
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.TransactionTypeID,
		&m.MoneySourceID,
		&m.CategoryID,
		&m.ContactID,
		&m.Amount,
		&m.TransactionDate,
		&m.Description,
		&m.IsBorrowingForThis,
		&m.IsFee,
		&m.ExcludeFromReport,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.TransactionTypeName,
		&m.TransactionTypeColor,
		&m.IsIncome,
		&m.MoneySourceName,
		&m.MoneySourceIcon,
		&m.CategoryName,
		&m.CategoryIcon,
		&m.ContactName,
	)
	return m, err
}

// lockSourcesAndApplyChanges locks every money source named in balanceChanges
// and applies the deltas, all on the given open transaction.
func (r *PgxTransactionRepository) lockSourcesAndApplyChanges(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	sourceIDs := make([]string, 0, len(balanceChanges))
	for sourceID := range balanceChanges {
		sourceIDs = append(sourceIDs, sourceID)
	}

	if _, err := r.moneySourceRepo.FindMoneySourcesByIDsForUpdate(ctx, tx, sourceIDs); err != nil {
		return fmt.Errorf("failed to lock money sources for update: %w", err)
	}
	if err := r.moneySourceRepo.ApplyBalanceChangesInTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return fmt.Errorf("failed to apply balance changes: %w", err)
	}
	return nil
}

// SaveTransaction inserts a transaction row and applies the balance deltas
// within one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (
			transaction_id, user_id, transaction_type_id, money_source_id, category_id, contact_id,
			amount, transaction_date, description, is_borrowing_for_this, is_fee, exclude_from_report,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.TransactionTypeID,
		m.MoneySourceID,
		m.CategoryID,
		m.ContactID,
		m.Amount,
		m.TransactionDate,
		m.Description,
		m.IsBorrowingForThis,
		m.IsFee,
		m.ExcludeFromReport,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}

	if err := r.lockSourcesAndApplyChanges(ctx, tx, balanceChanges, m.CreatedBy, m.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction replaces the mutable fields of a transaction row and
// applies the balance deltas within one database transaction. On a
// cross-source move, balanceChanges carries both the rollback on the original
// source and the fresh delta on the new one; both rows are locked together.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET transaction_type_id = $2, money_source_id = $3, category_id = $4, contact_id = $5,
		    amount = $6, transaction_date = $7, description = $8,
		    is_borrowing_for_this = $9, is_fee = $10, exclude_from_report = $11,
		    last_updated_at = $12, last_updated_by = $13
		WHERE transaction_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.TransactionTypeID,
		m.MoneySourceID,
		m.CategoryID,
		m.ContactID,
		m.Amount,
		m.TransactionDate,
		m.Description,
		m.IsBorrowingForThis,
		m.IsFee,
		m.ExcludeFromReport,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.lockSourcesAndApplyChanges(ctx, tx, balanceChanges, m.LastUpdatedBy, m.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes a transaction row and applies the rollback delta
// within one database transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.lockSourcesAndApplyChanges(ctx, tx, balanceChanges, userID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		WHERE t.transaction_id = $1;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// FindTransactionDetailsByID retrieves a transaction joined with its
// denormalized display fields.
func (r *PgxTransactionRepository) FindTransactionDetailsByID(ctx context.Context, transactionID string) (*domain.TransactionDetails, error) {
	query := `
		SELECT ` + transactionDetailsColumns + transactionDetailsJoins + `
		WHERE t.transaction_id = $1;
	`
	m, err := scanTransactionDetails(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction details by ID %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransactionDetails(m)
	return &d, nil
}

// ListTransactionDetailsByUser retrieves a paginated list of transaction
// details using token-based pagination. Ordering is (transaction_date,
// created_at) descending; it must stay stable for the cursor to work.
func (r *PgxTransactionRepository) ListTransactionDetailsByUser(ctx context.Context, userID string, filter portsrepo.ListTransactionsFilter, limit int, nextToken *string) ([]domain.TransactionDetails, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `
		SELECT ` + transactionDetailsColumns + transactionDetailsJoins + `
		WHERE t.user_id = $1`
	args := []interface{}{userID}

	if filter.MoneySourceID != nil {
		args = append(args, *filter.MoneySourceID)
		query += ` AND t.money_source_id = $` + strconv.Itoa(len(args))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		query += ` AND t.category_id = $` + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += ` AND t.transaction_date >= $` + strconv.Itoa(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += ` AND t.transaction_date <= $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		query += ` AND (t.transaction_date, t.created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += `
		ORDER BY t.transaction_date DESC, t.created_at DESC
		LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	details := make([]models.TransactionDetails, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransactionDetails(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction details row: %w", err)
		}
		details = append(details, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction detail rows: %w", err)
	}

	var nextTokenVal *string
	if len(details) > limit {
		last := details[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
		details = details[:limit]
	}

	return mapping.ToDomainTransactionDetailsSlice(details), nextTokenVal, nil
}
