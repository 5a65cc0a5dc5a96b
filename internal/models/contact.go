package models

// Contact mirrors the contacts table.
type Contact struct {
	ContactID string `db:"contact_id"`
	UserID    string `db:"user_id"`
	Name      string `db:"name"`
	Phone     string `db:"phone"`
	Note      string `db:"note"`
	AuditFields
}
