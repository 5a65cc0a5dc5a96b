package models

// Category mirrors the categories table.
type Category struct {
	CategoryID        string  `db:"category_id"`
	UserID            string  `db:"user_id"`
	TransactionTypeID string  `db:"transaction_type_id"`
	ParentCategoryID  *string `db:"parent_category_id"`
	Name              string  `db:"name"`
	Icon              string  `db:"icon"`
	IsActive          bool    `db:"is_active"`
	DisplayOrder      int     `db:"display_order"`
	AuditFields
}
