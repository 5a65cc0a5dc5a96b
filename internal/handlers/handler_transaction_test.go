package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/handlers"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
	"github.com/fintrackhq/fintrack_backend/internal/utils"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.TransactionDetails, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDetails), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.TransactionDetails, error) {
	args := m.Called(ctx, ownerID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDetails), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.TransactionDetails, error) {
	args := m.Called(ctx, ownerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDetails), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterTransactionRoutes(v1, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, "fintrack-test", time.Hour)
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *TransactionHandlerTestSuite) authedRequest(method, url string, body any, userID string) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (suite *TransactionHandlerTestSuite) sampleDetails(userID string) *domain.TransactionDetails {
	return &domain.TransactionDetails{
		Transaction: domain.Transaction{
			TransactionID:     uuid.NewString(),
			UserID:            userID,
			TransactionTypeID: "expense",
			MoneySourceID:     uuid.NewString(),
			CategoryID:        uuid.NewString(),
			Amount:            decimal.NewFromInt(250),
			TransactionDate:   time.Now().UTC(),
		},
		TransactionTypeName: "Expense",
		IsIncome:            false,
		MoneySourceName:     "Wallet",
		CategoryName:        "Groceries",
	}
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	userID := uuid.NewString()
	details := suite.sampleDetails(userID)

	suite.mockService.On("CreateTransaction",
		mock.Anything,
		userID,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.TransactionTypeID == "expense" && req.Amount.Equal(decimal.NewFromInt(250))
		}),
	).Return(details, nil).Once()

	body := dto.CreateTransactionRequest{
		TransactionTypeID: "expense",
		MoneySourceID:     details.MoneySourceID,
		CategoryID:        details.CategoryID,
		Amount:            decimal.NewFromInt(250),
		TransactionDate:   time.Now().UTC(),
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/transactions", body, userID))

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(details.TransactionID, resp.TransactionID)
	suite.Equal("Wallet", resp.MoneySourceName)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidAmountIsBadRequest() {
	userID := uuid.NewString()
	suite.mockService.On("CreateTransaction", mock.Anything, userID, mock.Anything).
		Return(nil, fmt.Errorf("%w: got -5", apperrors.ErrInvalidAmount)).Once()

	body := dto.CreateTransactionRequest{
		TransactionTypeID: "expense",
		MoneySourceID:     uuid.NewString(),
		CategoryID:        uuid.NewString(),
		Amount:            decimal.NewFromInt(-5),
		TransactionDate:   time.Now().UTC(),
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/transactions", body, userID))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingTokenIsUnauthorized() {
	body := dto.CreateTransactionRequest{
		TransactionTypeID: "expense",
		MoneySourceID:     uuid.NewString(),
		CategoryID:        uuid.NewString(),
		Amount:            decimal.NewFromInt(10),
		TransactionDate:   time.Now().UTC(),
	}
	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(raw))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()
	suite.mockService.On("GetTransactionByID", mock.Anything, userID, transactionID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/transactions/"+transactionID, nil, userID))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	userID := uuid.NewString()
	details := suite.sampleDetails(userID)
	nextToken := "b3BhcXVl"
	expected := &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses([]domain.TransactionDetails{*details}),
		NextToken:    &nextToken,
	}

	suite.mockService.On("ListTransactions", mock.Anything, userID, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Limit == 10 && p.MoneySourceID != nil && *p.MoneySourceID == details.MoneySourceID
	})).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/transactions?limit=10&moneySourceID=%s", details.MoneySourceID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, url, nil, userID))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(nextToken, *resp.NextToken)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_BadNextTokenIsBadRequest() {
	userID := uuid.NewString()
	// The repository raises malformed pagination tokens as a 400 AppError,
	// which reaches the handler wrapped by the service layer.
	repoErr := fmt.Errorf("failed to list transactions: %w",
		apperrors.NewAppError(400, "invalid nextToken", errors.New("illegal base64 data at input byte 0")))
	suite.mockService.On("ListTransactions", mock.Anything, userID, mock.Anything).
		Return(nil, repoErr).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/transactions?nextToken=%21%21", nil, userID))

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("invalid nextToken", resp["error"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_ContactNullReachesService() {
	userID := uuid.NewString()
	details := suite.sampleDetails(userID)

	suite.mockService.On("UpdateTransaction", mock.Anything, userID, details.TransactionID, mock.MatchedBy(func(req dto.UpdateTransactionRequest) bool {
		return req.ContactID.Present && !req.ContactID.Valid
	})).Return(details, nil).Once()

	// Raw body: encoding the request struct would drop the explicit null.
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/transactions/"+details.TransactionID, bytes.NewReader([]byte(`{"contactID":null}`)))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NoContent() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()
	suite.mockService.On("DeleteTransaction", mock.Anything, userID, transactionID).Return(nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodDelete, "/api/v1/transactions/"+transactionID, nil, userID))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
