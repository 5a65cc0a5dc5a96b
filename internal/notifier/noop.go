package notifier

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
)

// NoopNotifier discards all events. Used when no AMQP broker is configured.
type NoopNotifier struct{}

var _ portssvc.ChangeNotifier = (*NoopNotifier)(nil)

func (NoopNotifier) NotifyLedgerChanged(ctx context.Context, event domain.LedgerEvent) error {
	return nil
}
