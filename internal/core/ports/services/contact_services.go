package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// ContactSvcFacade defines contact CRUD.
type ContactSvcFacade interface {
	CreateContact(ctx context.Context, ownerID string, req dto.CreateContactRequest) (*domain.Contact, error)
	GetContactByID(ctx context.Context, ownerID string, contactID string) (*domain.Contact, error)
	ListContacts(ctx context.Context, ownerID string) ([]domain.Contact, error)
	UpdateContact(ctx context.Context, ownerID string, contactID string, req dto.UpdateContactRequest) (*domain.Contact, error)
	DeleteContact(ctx context.Context, ownerID string, contactID string) error
}
