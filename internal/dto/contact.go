package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// CreateContactRequest is the input for creating a contact.
type CreateContactRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Phone string `json:"phone" binding:"max=20"`
	Note  string `json:"note" binding:"max=500"`
}

// UpdateContactRequest is the partial-patch input for a contact.
type UpdateContactRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
	Note  *string `json:"note" binding:"omitempty,max=500"`
}

// ContactResponse is the API shape of a contact.
type ContactResponse struct {
	ContactID     string    `json:"contactID"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToContactResponse maps a domain contact to the API shape.
func ToContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ContactID:     c.ContactID,
		Name:          c.Name,
		Phone:         c.Phone,
		Note:          c.Note,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}
