package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// ChangeNotifier receives "ledger changed" events after a ledger operation
// commits. Delivery is best-effort: the ledger engine logs and swallows
// notifier errors, never failing or retrying the operation because of them.
type ChangeNotifier interface {
	NotifyLedgerChanged(ctx context.Context, event domain.LedgerEvent) error
}
