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

// VendorService manages vendors and their points of presence.
type VendorService struct {
	vendors    repository.VendorRepository
	pops       repository.PopRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewVendorService builds the service.
func NewVendorService(vendors repository.VendorRepository, pops repository.PopRepository, dispatcher events.Dispatcher, logger *zap.Logger) *VendorService {
	return &VendorService{vendors: vendors, pops: pops, dispatcher: dispatcher, logger: logger}
}

func (s *VendorService) publish(ctx context.Context, eventType events.EventType, entity string, id int64) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.NewRecordEvent(eventType, entity, id))
}

// AddVendor creates a vendor; duplicate (name, type) pairs are rejected.
func (s *VendorService) AddVendor(ctx context.Context, vendor *domain.Vendor) error {
	if _, err := s.vendors.GetByNameAndType(ctx, vendor.Name, vendor.Type); err == nil {
		return apperrors.NewValidationError("Vendor exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if err := s.vendors.Create(ctx, vendor); err != nil {
		return err
	}
	s.publish(ctx, events.EventRecordCreated, "vendor", vendor.ID)
	return nil
}

// ModifyVendor updates an existing vendor.
func (s *VendorService) ModifyVendor(ctx context.Context, vendor *domain.Vendor) error {
	if _, err := s.vendors.GetByID(ctx, vendor.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Vendor", nil)
		}
		return err
	}
	if err := s.vendors.Update(ctx, vendor); err != nil {
		return err
	}
	s.publish(ctx, events.EventRecordUpdated, "vendor", vendor.ID)
	return nil
}

// DeleteVendor removes a vendor.
func (s *VendorService) DeleteVendor(ctx context.Context, id int64) error {
	if _, err := s.vendors.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Vendor", nil)
		}
		return err
	}
	if err := s.vendors.Delete(ctx, id); err != nil {
		return mapDeleteError(err, "Vendor")
	}
	s.publish(ctx, events.EventRecordDeleted, "vendor", id)
	return nil
}

// ListVendors returns vendors matching the filter.
func (s *VendorService) ListVendors(ctx context.Context, filter repository.VendorFilter) ([]domain.Vendor, error) {
	return s.vendors.List(ctx, filter)
}

// AddPop creates a pop after owner and duplicate checks.
func (s *VendorService) AddPop(ctx context.Context, pop *domain.Pop) error {
	if _, err := s.vendors.GetByID(ctx, pop.Owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Vendor", nil)
		}
		return err
	}
	if _, err := s.pops.GetByNameAndOwner(ctx, pop.Name, pop.Owner); err == nil {
		return apperrors.NewValidationError("Pop exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if err := s.pops.Create(ctx, pop); err != nil {
		return err
	}
	s.publish(ctx, events.EventRecordCreated, "pop", pop.ID)
	return nil
}

// ModifyPop updates an existing pop.
func (s *VendorService) ModifyPop(ctx context.Context, pop *domain.Pop) error {
	if _, err := s.vendors.GetByID(ctx, pop.Owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Vendor", nil)
		}
		return err
	}
	if _, err := s.pops.GetByID(ctx, pop.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Pop", nil)
		}
		return err
	}
	if err := s.pops.Update(ctx, pop); err != nil {
		return err
	}
	s.publish(ctx, events.EventRecordUpdated, "pop", pop.ID)
	return nil
}

// DeletePop removes a pop.
func (s *VendorService) DeletePop(ctx context.Context, id int64) error {
	if _, err := s.pops.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Pop", nil)
		}
		return err
	}
	if err := s.pops.Delete(ctx, id); err != nil {
		return mapDeleteError(err, "Pop")
	}
	s.publish(ctx, events.EventRecordDeleted, "pop", id)
	return nil
}

// ListPops returns pops matching the filter. At least one filter besides
// pagination must be supplied; a pop list without any is too broad.
func (s *VendorService) ListPops(ctx context.Context, filter repository.PopFilter) ([]domain.Pop, error) {
	if filter.ID == nil && filter.NamePrefix == nil && filter.OwnerNamePrefix == nil {
		return nil, apperrors.NewValidationError("You must give at least one query parameter", nil)
	}
	return s.pops.List(ctx, filter)
}
