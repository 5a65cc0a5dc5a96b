package domain

import "time"

// LedgerAction identifies which ledger operation produced an event.
type LedgerAction string

const (
	LedgerActionCreated LedgerAction = "created"
	LedgerActionUpdated LedgerAction = "updated"
	LedgerActionDeleted LedgerAction = "deleted"
)

// LedgerEvent is the change notification emitted after a ledger operation
// commits. Delivery is best-effort; losing one never affects ledger
// correctness.
type LedgerEvent struct {
	UserID        string       `json:"userID"`
	TransactionID string       `json:"transactionID"`
	Action        LedgerAction `json:"action"`
	OccurredAt    time.Time    `json:"occurredAt"`
}
