package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/isp-registry/internal/domain"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

type fakeClientLookup struct {
	clients []domain.Client
	calls   int
}

func (f *fakeClientLookup) FindByNamePrefix(ctx context.Context, prefix string) ([]domain.Client, error) {
	f.calls++
	return f.clients, nil
}

type fakeVendorLookup struct {
	vendors []domain.Vendor
	calls   int
}

func (f *fakeVendorLookup) FindByNamePrefix(ctx context.Context, prefix string) ([]domain.Vendor, error) {
	f.calls++
	return f.vendors, nil
}

type fakeServiceLookup struct {
	services []domain.Service
	calls    int
}

func (f *fakeServiceLookup) FindByPointPrefix(ctx context.Context, clientID int64, prefix string) ([]domain.Service, error) {
	f.calls++
	return f.services, nil
}

func newTestResolver() (*SearchResolver, *fakeClientLookup, *fakeVendorLookup, *fakeServiceLookup) {
	clients := &fakeClientLookup{clients: []domain.Client{{ID: 10, Name: "Acme Bank"}, {ID: 11, Name: "Acme Cargo"}}}
	vendors := &fakeVendorLookup{vendors: []domain.Vendor{{ID: 20, Name: "FiberCo", Type: domain.VendorTypeNTTN}}}
	services := &fakeServiceLookup{services: []domain.Service{{ID: 30, ClientID: 10, Point: "Gulshan HQ"}}}
	return NewSearchResolver(clients, vendors, services), clients, vendors, services
}

func TestResolveContactSearchRejectsContradictions(t *testing.T) {
	resolver, clients, vendors, services := newTestResolver()

	tests := []struct {
		name     string
		selector SearchSelector
		message  string
	}{
		{
			name:     "two ids",
			selector: SearchSelector{ClientID: int64Ptr(1), VendorID: int64Ptr(2)},
			message:  "client_id, service_id and vendor_id cannot be provided at the same time",
		},
		{
			name:     "three ids",
			selector: SearchSelector{ClientID: int64Ptr(1), VendorID: int64Ptr(2), ServiceID: int64Ptr(3)},
			message:  "client_id, service_id and vendor_id cannot be provided at the same time",
		},
		{
			name:     "client and vendor names",
			selector: SearchSelector{ClientName: strPtr("Acme"), VendorName: strPtr("Fiber")},
			message:  "client_name and vendor_name cannot be provided at the same time",
		},
		{
			name:     "service id with point",
			selector: SearchSelector{ServiceID: int64Ptr(3), ServicePoint: strPtr("Gulshan"), ClientName: strPtr("Acme")},
			message:  "service_id and service_point cannot be provided at the same time",
		},
		{
			name:     "client id with name",
			selector: SearchSelector{ClientID: int64Ptr(1), ClientName: strPtr("Acme")},
			message:  "client_id and client_name cannot be provided at the same time",
		},
		{
			name:     "vendor id with name",
			selector: SearchSelector{VendorID: int64Ptr(2), VendorName: strPtr("Fiber")},
			message:  "vendor_id and vendor_name cannot be provided at the same time",
		},
		{
			name:     "service point without client name",
			selector: SearchSelector{ServicePoint: strPtr("Gulshan")},
			message:  "service_point requires client_name",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolver.ResolveContactSearch(context.Background(), ContactSearch{Selector: tc.selector})
			require.Error(t, err)
			domainErr := apperrors.ToDomainError(err)
			assert.Equal(t, 400, domainErr.HTTPStatus)
			assert.Equal(t, tc.message, domainErr.Message)
		})
	}

	// Contradictions are rejected before any store access.
	assert.Zero(t, clients.calls)
	assert.Zero(t, vendors.calls)
	assert.Zero(t, services.calls)
}

func TestResolveContactSearchCoDependency(t *testing.T) {
	resolver, _, _, _ := newTestResolver()

	_, err := resolver.ResolveContactSearch(context.Background(), ContactSearch{Designation: strPtr("Manager")})
	require.Error(t, err)
	assert.Equal(t, missingParentFilterMessage, apperrors.ToDomainError(err).Message)

	_, err = resolver.ResolveContactSearch(context.Background(), ContactSearch{Type: strPtr("Admin")})
	require.Error(t, err)

	// Narrowed by a parent the same filters are fine.
	filter, err := resolver.ResolveContactSearch(context.Background(), ContactSearch{
		Selector:    SearchSelector{ClientID: int64Ptr(10)},
		Designation: strPtr("Manager"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64Ptr(10), filter.ClientID)
	assert.Equal(t, strPtr("Manager"), filter.DesignationPrefix)
}

func TestResolveContactSearchResolvesNames(t *testing.T) {
	resolver, _, _, _ := newTestResolver()

	filter, err := resolver.ResolveContactSearch(context.Background(), ContactSearch{
		Selector: SearchSelector{ClientName: strPtr("Acme")},
	})
	require.NoError(t, err)
	// First match in store order wins.
	require.NotNil(t, filter.ClientID)
	assert.Equal(t, int64(10), *filter.ClientID)
	assert.Nil(t, filter.VendorID)
	assert.Nil(t, filter.ServiceID)

	filter, err = resolver.ResolveContactSearch(context.Background(), ContactSearch{
		Selector: SearchSelector{VendorName: strPtr("Fiber")},
	})
	require.NoError(t, err)
	require.NotNil(t, filter.VendorID)
	assert.Equal(t, int64(20), *filter.VendorID)
}

func TestResolveContactSearchServicePoint(t *testing.T) {
	resolver, _, _, _ := newTestResolver()

	filter, err := resolver.ResolveContactSearch(context.Background(), ContactSearch{
		Selector: SearchSelector{ClientName: strPtr("Acme"), ServicePoint: strPtr("Gulshan")},
	})
	require.NoError(t, err)
	// The resolved service supersedes the client in the final filter.
	require.NotNil(t, filter.ServiceID)
	assert.Equal(t, int64(30), *filter.ServiceID)
	assert.Nil(t, filter.ClientID)
}

func TestResolveContactSearchUnknownNames(t *testing.T) {
	resolver, clients, vendors, services := newTestResolver()
	clients.clients = nil
	vendors.vendors = nil
	services.services = nil

	_, err := resolver.ResolveContactSearch(context.Background(), ContactSearch{
		Selector: SearchSelector{ClientName: strPtr("Nobody")},
	})
	require.Error(t, err)
	assert.Equal(t, "Client not found", apperrors.ToDomainError(err).Message)

	_, err = resolver.ResolveContactSearch(context.Background(), ContactSearch{
		Selector: SearchSelector{VendorName: strPtr("Nobody")},
	})
	require.Error(t, err)
	assert.Equal(t, "Vendor not found", apperrors.ToDomainError(err).Message)
}

func TestResolveAddressSearchAllowsUnscopedFilters(t *testing.T) {
	resolver, _, _, _ := newTestResolver()

	// Address field filters do not require a parent filter.
	filter, err := resolver.ResolveAddressSearch(context.Background(), AddressSearch{
		District: strPtr("Dhaka"),
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, strPtr("Dhaka"), filter.DistrictPrefix)
	assert.Nil(t, filter.ClientID)

	filter, err = resolver.ResolveAddressSearch(context.Background(), AddressSearch{
		Selector: SearchSelector{VendorName: strPtr("Fiber")},
		Area:     strPtr("Banani"),
	})
	require.NoError(t, err)
	require.NotNil(t, filter.VendorID)
	assert.Equal(t, int64(20), *filter.VendorID)
}

func TestResolveServiceSearch(t *testing.T) {
	resolver, _, _, _ := newTestResolver()

	_, err := resolver.ResolveServiceSearch(context.Background(), ServiceSearch{
		ServiceID:    int64Ptr(30),
		ServicePoint: strPtr("Gulshan"),
	})
	require.Error(t, err)
	assert.Equal(t, "service_id and service_point cannot be provided at the same time", apperrors.ToDomainError(err).Message)

	_, err = resolver.ResolveServiceSearch(context.Background(), ServiceSearch{TypeName: strPtr("Internet")})
	require.Error(t, err)
	assert.Equal(t, missingParentFilterMessage, apperrors.ToDomainError(err).Message)

	filter, err := resolver.ResolveServiceSearch(context.Background(), ServiceSearch{
		ClientName:   strPtr("Acme"),
		ServicePoint: strPtr("Gulshan"),
		TypeName:     strPtr("Internet"),
	})
	require.NoError(t, err)
	require.NotNil(t, filter.ClientID)
	assert.Equal(t, int64(10), *filter.ClientID)
	// The point filters result rows rather than resolving to an id.
	assert.Equal(t, strPtr("Gulshan"), filter.PointPrefix)
	assert.Equal(t, strPtr("Internet"), filter.TypePrefix)
}
