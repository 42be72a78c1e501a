package services

import (
	"context"
	"fmt"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/models/dto"
)

type contactStore interface {
	Create(ctx context.Context, contact *models.Contact) (int64, error)
	GetAll(ctx context.Context) ([]*models.Contact, error)
}

// ContactService defines contact form operations.
type ContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) (*models.Contact, error)
	List(ctx context.Context) ([]*models.Contact, error)
}

type contactServiceImpl struct {
	contacts contactStore
}

// NewContactService creates a new contact service instance.
func NewContactService(contacts contactStore) ContactService {
	return &contactServiceImpl{contacts: contacts}
}

// Submit stores a contact form message.
func (s *contactServiceImpl) Submit(ctx context.Context, req *dto.ContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if _, err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("error submitting contact message: %w", err)
	}
	return contact, nil
}

// List returns all contact messages, newest first.
func (s *contactServiceImpl) List(ctx context.Context) ([]*models.Contact, error) {
	contacts, err := s.contacts.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving contact messages: %w", err)
	}
	return contacts, nil
}
