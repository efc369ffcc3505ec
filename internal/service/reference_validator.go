package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/spec-kit/isp-registry/internal/domain"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

const phoneNumberLength = 11

// ExistenceChecker is the narrow store lookup the validator needs per
// parent entity.
type ExistenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ParentRefCandidate is the incoming three-nullable-field shape of a
// contact or address payload before validation.
type ParentRefCandidate struct {
	ClientID  *int64
	VendorID  *int64
	ServiceID *int64
}

// ReferenceValidator enforces the exactly-one-parent invariant for
// contacts and addresses. The storage layer does not enforce it; every
// create and update must pass through here before any write.
type ReferenceValidator struct {
	clients  ExistenceChecker
	vendors  ExistenceChecker
	services ExistenceChecker
}

// NewReferenceValidator builds the validator.
func NewReferenceValidator(clients, vendors, services ExistenceChecker) *ReferenceValidator {
	return &ReferenceValidator{clients: clients, vendors: vendors, services: services}
}

// Validate checks that exactly one parent id is supplied and that the
// referenced row exists. Stateless: the same candidate always yields the
// same result. On update the record's current parent is irrelevant; only
// the incoming candidate's shape is checked.
func (v *ReferenceValidator) Validate(ctx context.Context, candidate ParentRefCandidate) (domain.ParentRef, error) {
	ref, err := domain.NewParentRef(candidate.ClientID, candidate.VendorID, candidate.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrParentRef) {
			return domain.ParentRef{}, apperrors.NewValidationError(err.Error(), nil)
		}
		return domain.ParentRef{}, err
	}

	// Only one id is ever populated, so the three checks are mutually
	// exclusive and ordering cannot matter.
	var (
		store   ExistenceChecker
		message string
	)
	switch ref.Kind {
	case domain.ParentClient:
		store, message = v.clients, "Client id does not exist"
	case domain.ParentVendor:
		store, message = v.vendors, "Vendor id does not exist"
	case domain.ParentService:
		store, message = v.services, "Service id does not exist"
	}

	exists, err := store.Exists(ctx, ref.ID)
	if err != nil {
		return domain.ParentRef{}, err
	}
	if !exists {
		return domain.ParentRef{}, apperrors.NewValidationError(message, nil)
	}
	return ref, nil
}

// ValidatePhones checks that every supplied phone number has the fixed
// length. Applied alongside, not instead of, the parent-reference check.
func ValidatePhones(phones ...*string) error {
	for _, phone := range phones {
		if phone == nil {
			continue
		}
		if len(*phone) != phoneNumberLength {
			return apperrors.NewValidationError(
				fmt.Sprintf("%s - Phone number must be 11 digits", *phone), nil)
		}
	}
	return nil
}
