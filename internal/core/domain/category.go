package domain

// Category groups transactions of one transaction type for a user.
//
// The category tree is at most two levels deep: a category with a non-null
// parent must never itself become a parent. A category and its parent share
// the same transaction type. Both rules are enforced at write time.
type Category struct {
	CategoryID        string  `json:"categoryID"` // Primary Key (UUID)
	UserID            string  `json:"userID"`     // Owner
	TransactionTypeID string  `json:"transactionTypeID"`
	ParentCategoryID  *string `json:"parentCategoryID,omitempty"` // Nullable FK -> categories
	Name              string  `json:"name"`
	Icon              string  `json:"icon"`
	IsActive          bool    `json:"isActive"`
	DisplayOrder      int     `json:"displayOrder"`
	AuditFields
}
