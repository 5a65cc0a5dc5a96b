package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/models"
)

// --- Stubs driving the atomic unit without a live database ---

type stubPool struct {
	tx *stubTx
}

func (p *stubPool) Begin(ctx context.Context) (pgx.Tx, error) { return p.tx, nil }

func (p *stubPool) Exec(ctx context.Context, sqlText string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("unexpected pool Exec")
}

func (p *stubPool) Query(ctx context.Context, sqlText string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected pool Query")
}

func (p *stubPool) QueryRow(ctx context.Context, sqlText string, args ...any) pgx.Row {
	return errRow{errors.New("unexpected pool QueryRow")}
}

var _ PgxPool = (*stubPool)(nil)

type errRow struct{ err error }

func (r errRow) Scan(dest ...any) error { return r.err }

// stubTx records every statement and whether the transaction ended in a
// commit or a rollback. Failure points are injected per phase: execErr fails
// the row write, queryErr fails the FOR UPDATE lock, batchExecErr fails the
// balance delta batch.
type stubTx struct {
	execErr      error
	execTag      string
	queryErr     error
	batchExecErr error
	lockedRows   []models.MoneySource

	execSQL    []string
	querySQL   []string
	committed  bool
	rolledBack bool
}

func (t *stubTx) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("nested transactions not supported")
}

func (t *stubTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(ctx context.Context) error {
	if t.committed {
		return sql.ErrTxDone
	}
	t.rolledBack = true
	return nil
}

func (t *stubTx) Exec(ctx context.Context, sqlText string, args ...any) (pgconn.CommandTag, error) {
	t.execSQL = append(t.execSQL, sqlText)
	if t.execErr != nil {
		return pgconn.CommandTag{}, t.execErr
	}
	tag := t.execTag
	if tag == "" {
		tag = "UPDATE 1"
	}
	return pgconn.NewCommandTag(tag), nil
}

func (t *stubTx) Query(ctx context.Context, sqlText string, args ...any) (pgx.Rows, error) {
	t.querySQL = append(t.querySQL, sqlText)
	if t.queryErr != nil {
		return nil, t.queryErr
	}
	return &stubSourceRows{sources: t.lockedRows}, nil
}

func (t *stubTx) QueryRow(ctx context.Context, sqlText string, args ...any) pgx.Row {
	return errRow{errors.New("unexpected QueryRow")}
}

func (t *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	return &stubBatchResults{remaining: b.Len(), execErr: t.batchExecErr}
}

func (t *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("unexpected CopyFrom")
}

func (t *stubTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *stubTx) Prepare(ctx context.Context, name, sqlText string) (*pgconn.StatementDescription, error) {
	return nil, errors.New("unexpected Prepare")
}

func (t *stubTx) Conn() *pgx.Conn { return nil }

var _ pgx.Tx = (*stubTx)(nil)

type stubSourceRows struct {
	sources []models.MoneySource
	idx     int
}

func (r *stubSourceRows) Next() bool {
	if r.idx >= len(r.sources) {
		return false
	}
	r.idx++
	return true
}

func (r *stubSourceRows) Scan(dest ...any) error {
	m := r.sources[r.idx-1]
	*dest[0].(*string) = m.MoneySourceID
	*dest[1].(*string) = m.UserID
	*dest[2].(*string) = m.AccountTypeID
	*dest[3].(*string) = m.Name
	*dest[4].(*string) = m.Icon
	*dest[5].(*decimal.Decimal) = m.Balance
	*dest[6].(*string) = m.CurrencyCode
	*dest[7].(*bool) = m.IsActive
	*dest[8].(*time.Time) = m.CreatedAt
	*dest[9].(*string) = m.CreatedBy
	*dest[10].(*time.Time) = m.LastUpdatedAt
	*dest[11].(*string) = m.LastUpdatedBy
	return nil
}

func (r *stubSourceRows) Close()                                       {}
func (r *stubSourceRows) Err() error                                   { return nil }
func (r *stubSourceRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubSourceRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubSourceRows) Values() ([]any, error)                       { return nil, errors.New("unexpected Values") }
func (r *stubSourceRows) RawValues() [][]byte                          { return nil }
func (r *stubSourceRows) Conn() *pgx.Conn                              { return nil }

var _ pgx.Rows = (*stubSourceRows)(nil)

type stubBatchResults struct {
	remaining int
	execErr   error
}

func (b *stubBatchResults) Exec() (pgconn.CommandTag, error) {
	b.remaining--
	if b.execErr != nil {
		return pgconn.CommandTag{}, b.execErr
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (b *stubBatchResults) Query() (pgx.Rows, error) {
	return nil, errors.New("unexpected batch Query")
}

func (b *stubBatchResults) QueryRow() pgx.Row {
	return errRow{errors.New("unexpected batch QueryRow")}
}

func (b *stubBatchResults) Close() error { return nil }

var _ pgx.BatchResults = (*stubBatchResults)(nil)

// --- Test Suite ---

// TransactionRepositoryTxSuite verifies that every ledger write is all or
// nothing: a failure at any phase after Begin rolls the whole transaction
// back, and commit is reached only after both the row write and the balance
// deltas succeed.
type TransactionRepositoryTxSuite struct {
	suite.Suite
	now time.Time
}

func (suite *TransactionRepositoryTxSuite) SetupTest() {
	suite.now = time.Now().UTC()
}

func (suite *TransactionRepositoryTxSuite) newRepo(tx *stubTx) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository:  BaseRepository{Pool: &stubPool{tx: tx}},
		moneySourceRepo: &PgxMoneySourceRepository{},
	}
}

func (suite *TransactionRepositoryTxSuite) sampleTxn(sourceID string) domain.Transaction {
	return domain.Transaction{
		TransactionID:     "txn-1",
		UserID:            "user-1",
		TransactionTypeID: "expense",
		MoneySourceID:     sourceID,
		CategoryID:        "cat-1",
		Amount:            decimal.NewFromInt(250),
		TransactionDate:   suite.now,
		AuditFields: domain.AuditFields{
			CreatedAt:     suite.now,
			CreatedBy:     "user-1",
			LastUpdatedAt: suite.now,
			LastUpdatedBy: "user-1",
		},
	}
}

func (suite *TransactionRepositoryTxSuite) lockedSource(id string) models.MoneySource {
	return models.MoneySource{
		MoneySourceID: id,
		UserID:        "user-1",
		AccountTypeID: "cash",
		Name:          "Wallet",
		Balance:       decimal.NewFromInt(1000),
		CurrencyCode:  "USD",
		IsActive:      true,
		AuditFields: models.AuditFields{
			CreatedAt:     suite.now,
			CreatedBy:     "user-1",
			LastUpdatedAt: suite.now,
			LastUpdatedBy: "user-1",
		},
	}
}

func (suite *TransactionRepositoryTxSuite) expenseChanges(sourceID string) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{sourceID: decimal.NewFromInt(-250)}
}

func (suite *TransactionRepositoryTxSuite) TestCreateRowInsertFailureRollsBack() {
	tx := &stubTx{execErr: errors.New("insert rejected")}
	repo := suite.newRepo(tx)

	err := repo.SaveTransaction(context.Background(), suite.sampleTxn("src-1"), suite.expenseChanges("src-1"))

	suite.Error(err)
	suite.True(tx.rolledBack)
	suite.False(tx.committed)
	// The balance phase never starts once the row write fails.
	suite.Empty(tx.querySQL)
}

func (suite *TransactionRepositoryTxSuite) TestCreateLockFailureAfterRowWriteRollsBack() {
	tx := &stubTx{queryErr: errors.New("lock timeout")}
	repo := suite.newRepo(tx)

	err := repo.SaveTransaction(context.Background(), suite.sampleTxn("src-1"), suite.expenseChanges("src-1"))

	suite.Error(err)
	// The row insert already ran inside the open transaction, so it must be
	// discarded together with everything else.
	suite.Len(tx.execSQL, 1)
	suite.True(tx.rolledBack)
	suite.False(tx.committed)
}

func (suite *TransactionRepositoryTxSuite) TestCreateBalanceWriteFailureRollsBack() {
	tx := &stubTx{
		lockedRows:   []models.MoneySource{suite.lockedSource("src-1")},
		batchExecErr: errors.New("balance update rejected"),
	}
	repo := suite.newRepo(tx)

	err := repo.SaveTransaction(context.Background(), suite.sampleTxn("src-1"), suite.expenseChanges("src-1"))

	suite.Error(err)
	suite.True(tx.rolledBack)
	suite.False(tx.committed)
}

func (suite *TransactionRepositoryTxSuite) TestCreateCommitsOnlyAfterBalanceApply() {
	tx := &stubTx{lockedRows: []models.MoneySource{suite.lockedSource("src-1")}}
	repo := suite.newRepo(tx)

	err := repo.SaveTransaction(context.Background(), suite.sampleTxn("src-1"), suite.expenseChanges("src-1"))

	suite.NoError(err)
	suite.True(tx.committed)
	suite.False(tx.rolledBack)
	suite.Len(tx.execSQL, 1)
	suite.Len(tx.querySQL, 1)
}

func (suite *TransactionRepositoryTxSuite) TestUpdateMissingRowRollsBack() {
	tx := &stubTx{execTag: "UPDATE 0"}
	repo := suite.newRepo(tx)

	err := repo.UpdateTransaction(context.Background(), suite.sampleTxn("src-1"), suite.expenseChanges("src-1"))

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.True(tx.rolledBack)
	suite.False(tx.committed)
	suite.Empty(tx.querySQL)
}

func (suite *TransactionRepositoryTxSuite) TestUpdateBalanceFailureLeavesRowWriteUncommitted() {
	tx := &stubTx{queryErr: errors.New("lock timeout")}
	repo := suite.newRepo(tx)

	err := repo.UpdateTransaction(context.Background(), suite.sampleTxn("src-1"), suite.expenseChanges("src-1"))

	suite.Error(err)
	suite.Len(tx.execSQL, 1)
	suite.True(tx.rolledBack)
	suite.False(tx.committed)
}

func (suite *TransactionRepositoryTxSuite) TestDeleteBalanceFailureLeavesRowDeleteUncommitted() {
	tx := &stubTx{queryErr: errors.New("lock timeout")}
	repo := suite.newRepo(tx)

	err := repo.DeleteTransaction(context.Background(), "txn-1", suite.expenseChanges("src-1"), "user-1", suite.now)

	suite.Error(err)
	suite.Len(tx.execSQL, 1)
	suite.True(tx.rolledBack)
	suite.False(tx.committed)
}

func (suite *TransactionRepositoryTxSuite) TestCrossSourceMoveCommitsBothDeltas() {
	tx := &stubTx{lockedRows: []models.MoneySource{
		suite.lockedSource("src-1"),
		suite.lockedSource("src-2"),
	}}
	repo := suite.newRepo(tx)

	changes := map[string]decimal.Decimal{
		"src-1": decimal.NewFromInt(250),
		"src-2": decimal.NewFromInt(-250),
	}
	err := repo.UpdateTransaction(context.Background(), suite.sampleTxn("src-2"), changes)

	suite.NoError(err)
	suite.True(tx.committed)
	suite.False(tx.rolledBack)
}

func (suite *TransactionRepositoryTxSuite) TestLockQueryOrdersSourcesDeterministically() {
	tx := &stubTx{lockedRows: []models.MoneySource{
		suite.lockedSource("src-a"),
		suite.lockedSource("src-b"),
	}}
	repo := &PgxMoneySourceRepository{}

	_, err := repo.FindMoneySourcesByIDsForUpdate(context.Background(), tx, []string{"src-b", "src-a"})

	suite.NoError(err)
	suite.Require().Len(tx.querySQL, 1)
	suite.Contains(tx.querySQL[0], "ORDER BY money_source_id")
	suite.Contains(tx.querySQL[0], "FOR UPDATE")
}

// --- Run Test Suite ---
func TestTransactionRepositoryTx(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTxSuite))
}
