package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/core/services"
)

func TestRegistryGet(t *testing.T) {
	registry := newTestRegistry(t)

	expense, ok := registry.Get("expense")
	require.True(t, ok)
	assert.False(t, expense.IsIncome)

	income, ok := registry.Get("income")
	require.True(t, ok)
	assert.True(t, income.IsIncome)

	_, ok = registry.Get("transfer")
	assert.False(t, ok)
}

func TestRegistryAllPreservesOrder(t *testing.T) {
	registry := newTestRegistry(t)

	all := registry.All()
	require.Len(t, all, 4)
	assert.Equal(t, "expense", all[0].TransactionTypeID)
	assert.Equal(t, "borrow", all[3].TransactionTypeID)
}

func TestRegistryRejectsEmptyTable(t *testing.T) {
	lookupRepo := new(MockLookupRepository)
	lookupRepo.On("ListTransactionTypes", mock.Anything).Return([]domain.TransactionType{}, nil)

	_, err := services.NewTransactionTypeRegistry(context.Background(), lookupRepo)
	assert.Error(t, err)
}

func TestRegistryPropagatesLoadError(t *testing.T) {
	lookupRepo := new(MockLookupRepository)
	lookupRepo.On("ListTransactionTypes", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := services.NewTransactionTypeRegistry(context.Background(), lookupRepo)
	assert.Error(t, err)
}
