package ledger

import "github.com/shopspring/decimal"

// Delta returns the signed amount a transaction applies to its money source's
// balance: +amount for income types, -amount for expense types.
//
// This is the single source of truth for balance direction. Create, update
// and delete all go through it, so a rollback followed by an exact reapply is
// guaranteed to net to the correct final balance.
func Delta(amount decimal.Decimal, isIncome bool) decimal.Decimal {
	if isIncome {
		return amount
	}
	return amount.Neg()
}

// Rollback returns the exact additive inverse of Delta for the same inputs.
func Rollback(amount decimal.Decimal, isIncome bool) decimal.Decimal {
	return Delta(amount, isIncome).Neg()
}
