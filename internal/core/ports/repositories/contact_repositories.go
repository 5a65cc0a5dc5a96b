package repositories

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// ContactReader defines read operations for contact data
type ContactReader interface {
	// FindContactByID retrieves a specific contact by its unique identifier.
	FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error)

	// ListContactsByUser retrieves all contacts owned by a user.
	ListContactsByUser(ctx context.Context, userID string) ([]domain.Contact, error)
}

// ContactWriter defines write operations for contact data
type ContactWriter interface {
	// SaveContact persists a new contact.
	SaveContact(ctx context.Context, contact domain.Contact) error

	// UpdateContact updates an existing contact.
	UpdateContact(ctx context.Context, contact domain.Contact) error

	// DeleteContact removes a contact.
	DeleteContact(ctx context.Context, contactID string) error
}

// ContactRepositoryFacade combines all contact repository interfaces.
type ContactRepositoryFacade interface {
	ContactReader
	ContactWriter
}
