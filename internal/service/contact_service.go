package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/isp-registry/internal/domain"
	"github.com/spec-kit/isp-registry/internal/events"
	"github.com/spec-kit/isp-registry/internal/repository"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

// ContactInput is the payload for contact create and update operations.
type ContactInput struct {
	Name        string
	Designation string
	Type        domain.ContactType
	Phone1      string
	Phone2      *string
	Phone3      *string
	Email       *string
	ClientID    *int64
	VendorID    *int64
	ServiceID   *int64
}

// ContactService manages contact records.
type ContactService struct {
	contacts   repository.ContactRepository
	validator  *ReferenceValidator
	resolver   *SearchResolver
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewContactService builds the service.
func NewContactService(contacts repository.ContactRepository, validator *ReferenceValidator, resolver *SearchResolver, dispatcher events.Dispatcher, logger *zap.Logger) *ContactService {
	return &ContactService{
		contacts:   contacts,
		validator:  validator,
		resolver:   resolver,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *ContactService) publish(ctx context.Context, eventType events.EventType, id int64) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.NewRecordEvent(eventType, "contact", id))
}

// validate runs the parent-reference and phone checks shared by create
// and update, and converts the input into a domain contact.
func (s *ContactService) validate(ctx context.Context, input ContactInput) (*domain.Contact, error) {
	parent, err := s.validator.Validate(ctx, ParentRefCandidate{
		ClientID:  input.ClientID,
		VendorID:  input.VendorID,
		ServiceID: input.ServiceID,
	})
	if err != nil {
		return nil, err
	}
	if err := ValidatePhones(&input.Phone1, input.Phone2, input.Phone3); err != nil {
		return nil, err
	}

	return &domain.Contact{
		Name:        input.Name,
		Designation: input.Designation,
		Type:        input.Type,
		Phone1:      input.Phone1,
		Phone2:      input.Phone2,
		Phone3:      input.Phone3,
		Email:       input.Email,
		Parent:      parent,
	}, nil
}

// AddContact validates and persists a new contact.
func (s *ContactService) AddContact(ctx context.Context, input ContactInput) (*domain.Contact, error) {
	contact, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	if _, err := s.contacts.GetByProperties(ctx, contact); err == nil {
		return nil, apperrors.NewValidationError("Contact exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventRecordCreated, contact.ID)
	return contact, nil
}

// ModifyContact validates and updates an existing contact. The record's
// current parent reference is irrelevant; only the incoming candidate is
// checked, so moving a contact between parents is a single update.
func (s *ContactService) ModifyContact(ctx context.Context, id int64, input ContactInput) (*domain.Contact, error) {
	contact, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	if _, err := s.contacts.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Contact", nil)
		}
		return nil, err
	}

	contact.ID = id
	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventRecordUpdated, contact.ID)
	return contact, nil
}

// DeleteContact removes a contact.
func (s *ContactService) DeleteContact(ctx context.Context, id int64) error {
	if _, err := s.contacts.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Contact", nil)
		}
		return err
	}
	if err := s.contacts.Delete(ctx, id); err != nil {
		return mapDeleteError(err, "Contact")
	}
	s.publish(ctx, events.EventRecordDeleted, id)
	return nil
}

// SearchContacts resolves the raw filter set and queries contacts.
func (s *ContactService) SearchContacts(ctx context.Context, search ContactSearch) ([]domain.Contact, error) {
	filter, err := s.resolver.ResolveContactSearch(ctx, search)
	if err != nil {
		return nil, err
	}
	return s.contacts.List(ctx, filter)
}
