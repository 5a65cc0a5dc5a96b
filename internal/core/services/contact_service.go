package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
)

// contactService provides contact CRUD.
type contactService struct {
	contactRepo portsrepo.ContactRepositoryFacade
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo portsrepo.ContactRepositoryFacade) portssvc.ContactSvcFacade {
	return &contactService{contactRepo: contactRepo}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

func (s *contactService) CreateContact(ctx context.Context, ownerID string, req dto.CreateContactRequest) (*domain.Contact, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	contact := domain.Contact{
		ContactID: uuid.NewString(),
		UserID:    ownerID,
		Name:      req.Name,
		Phone:     req.Phone,
		Note:      req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.contactRepo.SaveContact(ctx, contact); err != nil {
		logger.Error("Failed to save contact", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}
	return &contact, nil
}

func (s *contactService) GetContactByID(ctx context.Context, ownerID string, contactID string) (*domain.Contact, error) {
	return s.loadOwnedContact(ctx, ownerID, contactID)
}

func (s *contactService) ListContacts(ctx context.Context, ownerID string) ([]domain.Contact, error) {
	contacts, err := s.contactRepo.ListContactsByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactService) UpdateContact(ctx context.Context, ownerID string, contactID string, req dto.UpdateContactRequest) (*domain.Contact, error) {
	contact, err := s.loadOwnedContact(ctx, ownerID, contactID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Note != nil {
		contact.Note = *req.Note
	}

	contact.LastUpdatedAt = time.Now().UTC()
	contact.LastUpdatedBy = ownerID

	if err := s.contactRepo.UpdateContact(ctx, *contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) DeleteContact(ctx context.Context, ownerID string, contactID string) error {
	if _, err := s.loadOwnedContact(ctx, ownerID, contactID); err != nil {
		return err
	}
	return s.contactRepo.DeleteContact(ctx, contactID)
}

func (s *contactService) loadOwnedContact(ctx context.Context, ownerID, contactID string) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contact %s: %w", contactID, err)
	}
	if contact.UserID != ownerID {
		return nil, apperrors.ErrNotFound
	}
	return contact, nil
}
