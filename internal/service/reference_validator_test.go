package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/isp-registry/internal/domain"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

type fakeExistence struct {
	existing map[int64]bool
	calls    int
}

func (f *fakeExistence) Exists(ctx context.Context, id int64) (bool, error) {
	f.calls++
	return f.existing[id], nil
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func newTestValidator() (*ReferenceValidator, *fakeExistence, *fakeExistence, *fakeExistence) {
	clients := &fakeExistence{existing: map[int64]bool{1: true}}
	vendors := &fakeExistence{existing: map[int64]bool{2: true}}
	services := &fakeExistence{existing: map[int64]bool{3: true}}
	return NewReferenceValidator(clients, vendors, services), clients, vendors, services
}

func TestValidateAcceptsExactlyOneParent(t *testing.T) {
	validator, _, _, _ := newTestValidator()

	ref, err := validator.Validate(context.Background(), ParentRefCandidate{ClientID: int64Ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, domain.ParentClient, ref.Kind)
	assert.Equal(t, int64(1), ref.ID)

	ref, err = validator.Validate(context.Background(), ParentRefCandidate{VendorID: int64Ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, domain.ParentVendor, ref.Kind)

	ref, err = validator.Validate(context.Background(), ParentRefCandidate{ServiceID: int64Ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, domain.ParentService, ref.Kind)
}

func TestValidateRejectsWrongParentCount(t *testing.T) {
	validator, clients, vendors, services := newTestValidator()

	tests := []struct {
		name      string
		candidate ParentRefCandidate
	}{
		{name: "none set", candidate: ParentRefCandidate{}},
		{name: "two set", candidate: ParentRefCandidate{ClientID: int64Ptr(1), VendorID: int64Ptr(2)}},
		{name: "all set", candidate: ParentRefCandidate{ClientID: int64Ptr(1), VendorID: int64Ptr(2), ServiceID: int64Ptr(3)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validator.Validate(context.Background(), tc.candidate)
			require.Error(t, err)
			domainErr := apperrors.ToDomainError(err)
			assert.Equal(t, 400, domainErr.HTTPStatus)
			assert.Equal(t, domain.ErrParentRef.Error(), domainErr.Message)
		})
	}

	// Shape failures never reach the store.
	assert.Zero(t, clients.calls)
	assert.Zero(t, vendors.calls)
	assert.Zero(t, services.calls)
}

func TestValidateRejectsMissingRows(t *testing.T) {
	validator, _, _, _ := newTestValidator()

	tests := []struct {
		name      string
		candidate ParentRefCandidate
		message   string
	}{
		{name: "client", candidate: ParentRefCandidate{ClientID: int64Ptr(99)}, message: "Client id does not exist"},
		{name: "vendor", candidate: ParentRefCandidate{VendorID: int64Ptr(99)}, message: "Vendor id does not exist"},
		{name: "service", candidate: ParentRefCandidate{ServiceID: int64Ptr(99)}, message: "Service id does not exist"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validator.Validate(context.Background(), tc.candidate)
			require.Error(t, err)
			domainErr := apperrors.ToDomainError(err)
			assert.Equal(t, 400, domainErr.HTTPStatus)
			assert.Equal(t, tc.message, domainErr.Message)
		})
	}
}

func TestValidateIsStateless(t *testing.T) {
	validator, _, _, _ := newTestValidator()
	candidate := ParentRefCandidate{VendorID: int64Ptr(2)}

	first, err := validator.Validate(context.Background(), candidate)
	require.NoError(t, err)
	second, err := validator.Validate(context.Background(), candidate)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidatePhones(t *testing.T) {
	assert.NoError(t, ValidatePhones())
	assert.NoError(t, ValidatePhones(nil, nil))
	assert.NoError(t, ValidatePhones(strPtr("01711111111")))
	assert.NoError(t, ValidatePhones(strPtr("01711111111"), nil, strPtr("01822222222")))

	err := ValidatePhones(strPtr("12345"))
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, "12345 - Phone number must be 11 digits", domainErr.Message)

	// First bad number wins.
	err = ValidatePhones(strPtr("01711111111"), strPtr("000"))
	require.Error(t, err)
	assert.Equal(t, "000 - Phone number must be 11 digits", apperrors.ToDomainError(err).Message)
}
