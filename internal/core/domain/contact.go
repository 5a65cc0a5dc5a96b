package domain

// Contact is an optional counterparty on a transaction (who was paid, lent
// to, borrowed from).
type Contact struct {
	ContactID string `json:"contactID"` // Primary Key (UUID)
	UserID    string `json:"userID"`    // Owner
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Note      string `json:"note"`
	AuditFields
}
