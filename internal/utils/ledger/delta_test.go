package ledger_test

import (
	"testing"

	"github.com/fintrackhq/fintrack_backend/internal/utils/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDelta(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		isIncome bool
		want     string
	}{
		{"income adds", "100", true, "100"},
		{"expense subtracts", "100", false, "-100"},
		{"fractional income", "0.01", true, "0.01"},
		{"fractional expense", "250.75", false, "-250.75"},
		{"large expense", "99999999.99", false, "-99999999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			want := decimal.RequireFromString(tt.want)
			assert.True(t, ledger.Delta(amount, tt.isIncome).Equal(want))
		})
	}
}

func TestRollbackIsAdditiveInverse(t *testing.T) {
	amounts := []string{"0.01", "1", "250.00", "400.00", "12345.67"}
	for _, a := range amounts {
		amount := decimal.RequireFromString(a)
		for _, isIncome := range []bool{true, false} {
			sum := ledger.Delta(amount, isIncome).Add(ledger.Rollback(amount, isIncome))
			assert.True(t, sum.IsZero(), "delta+rollback must be zero for %s income=%v", a, isIncome)
		}
	}
}
