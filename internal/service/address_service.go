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

// AddressInput is the payload for address create and update operations.
type AddressInput struct {
	Flat      *string
	Floor     *string
	Holding   string
	Street    string
	Area      string
	Thana     string
	District  string
	ExtraInfo *string
	ClientID  *int64
	VendorID  *int64
	ServiceID *int64
}

// AddressService manages address records.
type AddressService struct {
	addresses  repository.AddressRepository
	validator  *ReferenceValidator
	resolver   *SearchResolver
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAddressService builds the service.
func NewAddressService(addresses repository.AddressRepository, validator *ReferenceValidator, resolver *SearchResolver, dispatcher events.Dispatcher, logger *zap.Logger) *AddressService {
	return &AddressService{
		addresses:  addresses,
		validator:  validator,
		resolver:   resolver,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *AddressService) publish(ctx context.Context, eventType events.EventType, id int64) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.NewRecordEvent(eventType, "address", id))
}

func (s *AddressService) validate(ctx context.Context, input AddressInput) (*domain.Address, error) {
	parent, err := s.validator.Validate(ctx, ParentRefCandidate{
		ClientID:  input.ClientID,
		VendorID:  input.VendorID,
		ServiceID: input.ServiceID,
	})
	if err != nil {
		return nil, err
	}

	return &domain.Address{
		Flat:      input.Flat,
		Floor:     input.Floor,
		Holding:   input.Holding,
		Street:    input.Street,
		Area:      input.Area,
		Thana:     input.Thana,
		District:  input.District,
		ExtraInfo: input.ExtraInfo,
		Parent:    parent,
	}, nil
}

// AddAddress validates and persists a new address.
func (s *AddressService) AddAddress(ctx context.Context, input AddressInput) (*domain.Address, error) {
	address, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventRecordCreated, address.ID)
	return address, nil
}

// ModifyAddress validates and updates an existing address.
func (s *AddressService) ModifyAddress(ctx context.Context, id int64, input AddressInput) (*domain.Address, error) {
	address, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	if _, err := s.addresses.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Address", nil)
		}
		return nil, err
	}

	address.ID = id
	if err := s.addresses.Update(ctx, address); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventRecordUpdated, address.ID)
	return address, nil
}

// DeleteAddress removes an address.
func (s *AddressService) DeleteAddress(ctx context.Context, id int64) error {
	if _, err := s.addresses.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Address", nil)
		}
		return err
	}
	if err := s.addresses.Delete(ctx, id); err != nil {
		return mapDeleteError(err, "Address")
	}
	s.publish(ctx, events.EventRecordDeleted, id)
	return nil
}

// SearchAddresses resolves the raw filter set and queries addresses.
func (s *AddressService) SearchAddresses(ctx context.Context, search AddressSearch) ([]domain.Address, error) {
	filter, err := s.resolver.ResolveAddressSearch(ctx, search)
	if err != nil {
		return nil, err
	}
	return s.addresses.List(ctx, filter)
}
