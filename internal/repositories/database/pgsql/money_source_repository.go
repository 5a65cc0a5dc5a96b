package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/models"
	"github.com/fintrackhq/fintrack_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const moneySourceColumns = `money_source_id, user_id, account_type_id, name, icon, balance, currency_code, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxMoneySourceRepository struct {
	pool *pgxpool.Pool
}

// newPgxMoneySourceRepository creates a new repository for money source data.
func newPgxMoneySourceRepository(pool *pgxpool.Pool) portsrepo.MoneySourceRepositoryFacade {
	return &PgxMoneySourceRepository{pool: pool}
}

// Ensure PgxMoneySourceRepository implements portsrepo.MoneySourceRepositoryFacade
var _ portsrepo.MoneySourceRepositoryFacade = (*PgxMoneySourceRepository)(nil)

func scanMoneySource(row pgx.Row) (models.MoneySource, error) {
	var m models.MoneySource
	err := row.Scan(
		&m.MoneySourceID,
		&m.UserID,
		&m.AccountTypeID,
		&m.Name,
		&m.Icon,
		&m.Balance,
		&m.CurrencyCode,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveMoneySource inserts a new money source.
func (r *PgxMoneySourceRepository) SaveMoneySource(ctx context.Context, source domain.MoneySource) error {
	m := mapping.ToModelMoneySource(source)

	query := `
		INSERT INTO money_sources (` + moneySourceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		m.MoneySourceID,
		m.UserID,
		m.AccountTypeID,
		m.Name,
		m.Icon,
		m.Balance,
		m.CurrencyCode,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: money source with ID %s already exists", apperrors.ErrDuplicate, m.MoneySourceID)
		}
		return fmt.Errorf("failed to save money source %s: %w", m.MoneySourceID, err)
	}
	return nil
}

// FindMoneySourceByID retrieves a money source by its ID.
func (r *PgxMoneySourceRepository) FindMoneySourceByID(ctx context.Context, moneySourceID string) (*domain.MoneySource, error) {
	query := `
		SELECT ` + moneySourceColumns + `
		FROM money_sources
		WHERE money_source_id = $1;
	`
	m, err := scanMoneySource(r.pool.QueryRow(ctx, query, moneySourceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find money source by ID %s: %w", moneySourceID, err)
	}
	d := mapping.ToDomainMoneySource(m)
	return &d, nil
}

// ListMoneySourcesByUser retrieves all money sources owned by a user.
func (r *PgxMoneySourceRepository) ListMoneySourcesByUser(ctx context.Context, userID string, includeInactive bool) ([]domain.MoneySource, error) {
	query := `
		SELECT ` + moneySourceColumns + `
		FROM money_sources
		WHERE user_id = $1
	`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query money sources for user %s: %w", userID, err)
	}
	defer rows.Close()

	sources := []models.MoneySource{}
	for rows.Next() {
		m, err := scanMoneySource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan money source row: %w", err)
		}
		sources = append(sources, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating money source rows: %w", err)
	}

	return mapping.ToDomainMoneySourceSlice(sources), nil
}

// UpdateMoneySource updates the editable fields of a money source. Balance is
// deliberately not touched here; only the ledger's atomic units and
// SetMoneySourceBalance write it.
func (r *PgxMoneySourceRepository) UpdateMoneySource(ctx context.Context, source domain.MoneySource) error {
	m := mapping.ToModelMoneySource(source)

	query := `
		UPDATE money_sources
		SET account_type_id = $2, name = $3, icon = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE money_source_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.MoneySourceID,
		m.AccountTypeID,
		m.Name,
		m.Icon,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update money source %s: %w", m.MoneySourceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetMoneySourceBalance overwrites the cached balance. This is the
// balance-correction path only; ledger writes go through ApplyBalanceChangesInTx.
func (r *PgxMoneySourceRepository) SetMoneySourceBalance(ctx context.Context, moneySourceID string, balance decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE money_sources
		SET balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE money_source_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query, moneySourceID, balance, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set balance for money source %s: %w", moneySourceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateMoneySource marks a money source as inactive.
func (r *PgxMoneySourceRepository) DeactivateMoneySource(ctx context.Context, moneySourceID string, userID string, now time.Time) error {
	query := `
		UPDATE money_sources
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE money_source_id = $1 AND is_active = TRUE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, moneySourceID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to execute deactivate money source %s: %w", moneySourceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the source doesn't exist or it was already inactive.
		_, findErr := r.FindMoneySourceByID(ctx, moneySourceID)
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check money source status after deactivation attempt for %s: %w", moneySourceID, findErr)
		}
		return apperrors.ErrValidation
	}
	return nil
}

// FindMoneySourcesByIDsForUpdate retrieves money sources by IDs and locks the
// rows for update. Must be called within a transaction.
func (r *PgxMoneySourceRepository) FindMoneySourcesByIDsForUpdate(ctx context.Context, tx pgx.Tx, moneySourceIDs []string) (map[string]domain.MoneySource, error) {
	if len(moneySourceIDs) == 0 {
		return map[string]domain.MoneySource{}, nil
	}

	// ORDER BY fixes the lock acquisition order so two atomic units touching
	// the same pair of sources cannot deadlock each other.
	query := `
		SELECT ` + moneySourceColumns + `
		FROM money_sources
		WHERE money_source_id = ANY($1)
		ORDER BY money_source_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, moneySourceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query money sources by IDs for update: %w", err)
	}
	defer rows.Close()

	sourcesMap := make(map[string]domain.MoneySource)
	for rows.Next() {
		m, err := scanMoneySource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked money source row: %w", err)
		}
		sourcesMap[m.MoneySourceID] = mapping.ToDomainMoneySource(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked money source rows: %w", err)
	}

	if len(sourcesMap) != len(moneySourceIDs) {
		missing := []string{}
		for _, id := range moneySourceIDs {
			if _, found := sourcesMap[id]; !found {
				missing = append(missing, id)
			}
		}
		slog.WarnContext(ctx, "Some money sources requested for update lock were not found", "missing_sources", missing)
		return nil, fmt.Errorf("%w: could not find or lock all requested money sources, missing: %v", apperrors.ErrNotFound, missing)
	}

	return sourcesMap, nil
}

// ApplyBalanceChangesInTx applies signed balance deltas to multiple money
// sources within a transaction. Zero deltas are skipped.
func (r *PgxMoneySourceRepository) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	if len(balanceChanges) == 0 {
		return nil
	}

	query := `
		UPDATE money_sources
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE money_source_id = $1;
	`

	batch := &pgx.Batch{}
	sourceIDs := make([]string, 0, len(balanceChanges))
	for sourceID, delta := range balanceChanges {
		if !delta.IsZero() {
			batch.Queue(query, sourceID, delta, now, userID)
			sourceIDs = append(sourceIDs, sourceID)
		}
	}

	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update balance for money source %s: %w", sourceIDs[i], err)
			}
		} else if ct.RowsAffected() == 0 {
			if batchErr == nil {
				batchErr = fmt.Errorf("%w: money source %s not found during balance update", apperrors.ErrNotFound, sourceIDs[i])
			}
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}

	return batchErr
}
