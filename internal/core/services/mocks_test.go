package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionDetailsByID(ctx context.Context, transactionID string) (*domain.TransactionDetails, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDetails), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionDetailsByUser(ctx context.Context, userID string, filter portsrepo.ListTransactionsFilter, limit int, nextToken *string) ([]domain.TransactionDetails, *string, error) {
	args := m.Called(ctx, userID, filter, limit, nextToken)
	var details []domain.TransactionDetails
	if args.Get(0) != nil {
		details = args.Get(0).([]domain.TransactionDetails)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return details, token, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceChanges)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceChanges)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, transactionID, balanceChanges, userID, now)
	return args.Error(0)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock MoneySourceRepository ---

type MockMoneySourceRepository struct {
	mock.Mock
}

func (m *MockMoneySourceRepository) FindMoneySourceByID(ctx context.Context, moneySourceID string) (*domain.MoneySource, error) {
	args := m.Called(ctx, moneySourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneySource), args.Error(1)
}

func (m *MockMoneySourceRepository) ListMoneySourcesByUser(ctx context.Context, userID string, includeInactive bool) ([]domain.MoneySource, error) {
	args := m.Called(ctx, userID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoneySource), args.Error(1)
}

func (m *MockMoneySourceRepository) SaveMoneySource(ctx context.Context, source domain.MoneySource) error {
	args := m.Called(ctx, source)
	return args.Error(0)
}

func (m *MockMoneySourceRepository) UpdateMoneySource(ctx context.Context, source domain.MoneySource) error {
	args := m.Called(ctx, source)
	return args.Error(0)
}

func (m *MockMoneySourceRepository) SetMoneySourceBalance(ctx context.Context, moneySourceID string, balance decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, moneySourceID, balance, userID, now)
	return args.Error(0)
}

func (m *MockMoneySourceRepository) DeactivateMoneySource(ctx context.Context, moneySourceID string, userID string, now time.Time) error {
	args := m.Called(ctx, moneySourceID, userID, now)
	return args.Error(0)
}

func (m *MockMoneySourceRepository) FindMoneySourcesByIDsForUpdate(ctx context.Context, tx pgx.Tx, moneySourceIDs []string) (map[string]domain.MoneySource, error) {
	args := m.Called(ctx, tx, moneySourceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.MoneySource), args.Error(1)
}

func (m *MockMoneySourceRepository) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, userID, now)
	return args.Error(0)
}

var _ portsrepo.MoneySourceRepositoryFacade = (*MockMoneySourceRepository)(nil)

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByUser(ctx context.Context, userID string, transactionTypeID *string, includeInactive bool) ([]domain.Category, error) {
	args := m.Called(ctx, userID, transactionTypeID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) HasChildCategories(ctx context.Context, categoryID string) (bool, error) {
	args := m.Called(ctx, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeactivateCategory(ctx context.Context, categoryID string, userID string, now time.Time) error {
	args := m.Called(ctx, categoryID, userID, now)
	return args.Error(0)
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

// --- Mock ContactRepository ---

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListContactsByUser(ctx context.Context, userID string) ([]domain.Contact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteContact(ctx context.Context, contactID string) error {
	args := m.Called(ctx, contactID)
	return args.Error(0)
}

var _ portsrepo.ContactRepositoryFacade = (*MockContactRepository)(nil)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock LookupRepository ---

type MockLookupRepository struct {
	mock.Mock
}

func (m *MockLookupRepository) ListTransactionTypes(ctx context.Context) ([]domain.TransactionType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionType), args.Error(1)
}

func (m *MockLookupRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountType), args.Error(1)
}

func (m *MockLookupRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockLookupRepository) FindAccountTypeByID(ctx context.Context, accountTypeID string) (*domain.AccountType, error) {
	args := m.Called(ctx, accountTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountType), args.Error(1)
}

func (m *MockLookupRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

var _ portsrepo.LookupRepositoryFacade = (*MockLookupRepository)(nil)

// --- Mock ChangeNotifier ---

type MockChangeNotifier struct {
	mock.Mock
}

func (m *MockChangeNotifier) NotifyLedgerChanged(ctx context.Context, event domain.LedgerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var _ portssvc.ChangeNotifier = (*MockChangeNotifier)(nil)

// newTestRegistry builds a real registry from the standard seeded types.
func newTestRegistry(t *testing.T) portssvc.TransactionTypeRegistry {
	t.Helper()

	lookupRepo := new(MockLookupRepository)
	lookupRepo.On("ListTransactionTypes", mock.Anything).Return([]domain.TransactionType{
		{TransactionTypeID: "expense", Name: "Expense", IsIncome: false, DisplayOrder: 1},
		{TransactionTypeID: "income", Name: "Income", IsIncome: true, DisplayOrder: 2},
		{TransactionTypeID: "lend", Name: "Lend", IsIncome: false, DisplayOrder: 3},
		{TransactionTypeID: "borrow", Name: "Borrow", IsIncome: true, DisplayOrder: 4},
	}, nil)

	registry, err := services.NewTransactionTypeRegistry(context.Background(), lookupRepo)
	require.NoError(t, err)
	return registry
}
