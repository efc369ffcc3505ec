package service

import (
	"context"

	"github.com/spec-kit/isp-registry/internal/domain"
	"github.com/spec-kit/isp-registry/internal/repository"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

// Narrow lookups the resolver performs against the record store.
type clientNameLookup interface {
	FindByNamePrefix(ctx context.Context, prefix string) ([]domain.Client, error)
}

type vendorNameLookup interface {
	FindByNamePrefix(ctx context.Context, prefix string) ([]domain.Vendor, error)
}

type servicePointLookup interface {
	FindByPointPrefix(ctx context.Context, clientID int64, prefix string) ([]domain.Service, error)
}

// SearchSelector holds the raw parent-identifying filters shared by the
// contact, address and service searches.
type SearchSelector struct {
	ClientID     *int64
	ServiceID    *int64
	VendorID     *int64
	ClientName   *string
	ServicePoint *string
	VendorName   *string
}

func (s SearchSelector) hasParentFilter() bool {
	return s.ClientID != nil || s.ServiceID != nil || s.VendorID != nil ||
		s.ClientName != nil || s.ServicePoint != nil || s.VendorName != nil
}

// ContactSearch is the raw filter set for contact searches.
type ContactSearch struct {
	Selector    SearchSelector
	ID          *int64
	Name        *string
	Designation *string
	Type        *string
	Phone       *string
	Email       *string
	Limit       int
	Offset      int
}

// AddressSearch is the raw filter set for address searches.
type AddressSearch struct {
	Selector SearchSelector
	ID       *int64
	Holding  *string
	Street   *string
	Area     *string
	Thana    *string
	District *string
	Limit    int
	Offset   int
}

// ServiceSearch is the raw filter set for service searches. ServicePoint
// filters the result rows themselves; ClientName is resolved to an id.
type ServiceSearch struct {
	ServiceID    *int64
	ServicePoint *string
	ClientID     *int64
	ClientName   *string
	PopName      *string
	TypeName     *string
	Limit        int
	Offset       int
}

// SearchResolver translates human-facing name filters into numeric
// identifiers and rejects contradictory or overly broad filter sets
// before the record store is consulted.
//
// Name resolution is best effort: when several rows share a prefix the
// first row in the store's default ordering wins. Names are expected to
// be unique in practice but the schema does not enforce that for vendors.
type SearchResolver struct {
	clients  clientNameLookup
	vendors  vendorNameLookup
	services servicePointLookup
}

// NewSearchResolver builds the resolver.
func NewSearchResolver(clients clientNameLookup, vendors vendorNameLookup, services servicePointLookup) *SearchResolver {
	return &SearchResolver{clients: clients, vendors: vendors, services: services}
}

// validateExclusions rejects contradictory parameter combinations. Runs
// before any store access.
func validateExclusions(sel SearchSelector) error {
	ids := 0
	for _, id := range []*int64{sel.ClientID, sel.ServiceID, sel.VendorID} {
		if id != nil {
			ids++
		}
	}
	if ids > 1 {
		return apperrors.NewValidationError("client_id, service_id and vendor_id cannot be provided at the same time", nil)
	}
	if sel.ClientName != nil && sel.VendorName != nil {
		return apperrors.NewValidationError("client_name and vendor_name cannot be provided at the same time", nil)
	}
	if sel.ServiceID != nil && sel.ServicePoint != nil {
		return apperrors.NewValidationError("service_id and service_point cannot be provided at the same time", nil)
	}
	if sel.ClientID != nil && sel.ClientName != nil {
		return apperrors.NewValidationError("client_id and client_name cannot be provided at the same time", nil)
	}
	if sel.VendorID != nil && sel.VendorName != nil {
		return apperrors.NewValidationError("vendor_id and vendor_name cannot be provided at the same time", nil)
	}
	if sel.ServicePoint != nil && sel.ClientName == nil {
		// A service point name alone is not assumed globally unique.
		return apperrors.NewValidationError("service_point requires client_name", nil)
	}
	return nil
}

// resolve substitutes identifiers for the supplied names, first match wins.
func (r *SearchResolver) resolve(ctx context.Context, sel SearchSelector) (SearchSelector, error) {
	resolved := SearchSelector{
		ClientID:  sel.ClientID,
		ServiceID: sel.ServiceID,
		VendorID:  sel.VendorID,
	}

	if sel.ClientName != nil {
		clients, err := r.clients.FindByNamePrefix(ctx, *sel.ClientName)
		if err != nil {
			return SearchSelector{}, err
		}
		if len(clients) == 0 {
			return SearchSelector{}, apperrors.NewValidationError("Client not found", nil)
		}
		resolved.ClientID = &clients[0].ID
	}

	if sel.ServicePoint != nil {
		services, err := r.services.FindByPointPrefix(ctx, *resolved.ClientID, *sel.ServicePoint)
		if err != nil {
			return SearchSelector{}, err
		}
		if len(services) == 0 {
			return SearchSelector{}, apperrors.NewValidationError("Service not found", nil)
		}
		resolved.ServiceID = &services[0].ID
		// The service subsumes the client scope in the final filter.
		resolved.ClientID = nil
	}

	if sel.VendorName != nil {
		vendors, err := r.vendors.FindByNamePrefix(ctx, *sel.VendorName)
		if err != nil {
			return SearchSelector{}, err
		}
		if len(vendors) == 0 {
			return SearchSelector{}, apperrors.NewValidationError("Vendor not found", nil)
		}
		resolved.VendorID = &vendors[0].ID
	}

	return resolved, nil
}

const missingParentFilterMessage = "provide at least one of client_id, service_id, vendor_id, client_name, service_point or vendor_name"

// ResolveContactSearch validates and resolves a contact filter set.
func (r *SearchResolver) ResolveContactSearch(ctx context.Context, search ContactSearch) (repository.ContactFilter, error) {
	if err := validateExclusions(search.Selector); err != nil {
		return repository.ContactFilter{}, err
	}
	if (search.Designation != nil || search.Type != nil) && !search.Selector.hasParentFilter() {
		return repository.ContactFilter{}, apperrors.NewValidationError(missingParentFilterMessage, nil)
	}

	resolved, err := r.resolve(ctx, search.Selector)
	if err != nil {
		return repository.ContactFilter{}, err
	}

	return repository.ContactFilter{
		ID:                search.ID,
		NamePrefix:        search.Name,
		DesignationPrefix: search.Designation,
		TypePrefix:        search.Type,
		PhonePrefix:       search.Phone,
		EmailPrefix:       search.Email,
		ClientID:          resolved.ClientID,
		VendorID:          resolved.VendorID,
		ServiceID:         resolved.ServiceID,
		Limit:             search.Limit,
		Offset:            search.Offset,
	}, nil
}

// ResolveAddressSearch validates and resolves an address filter set.
func (r *SearchResolver) ResolveAddressSearch(ctx context.Context, search AddressSearch) (repository.AddressFilter, error) {
	if err := validateExclusions(search.Selector); err != nil {
		return repository.AddressFilter{}, err
	}

	resolved, err := r.resolve(ctx, search.Selector)
	if err != nil {
		return repository.AddressFilter{}, err
	}

	return repository.AddressFilter{
		ID:             search.ID,
		HoldingPrefix:  search.Holding,
		StreetPrefix:   search.Street,
		AreaPrefix:     search.Area,
		ThanaPrefix:    search.Thana,
		DistrictPrefix: search.District,
		ClientID:       resolved.ClientID,
		VendorID:       resolved.VendorID,
		ServiceID:      resolved.ServiceID,
		Limit:          search.Limit,
		Offset:         search.Offset,
	}, nil
}

// ResolveServiceSearch validates and resolves a service filter set.
func (r *SearchResolver) ResolveServiceSearch(ctx context.Context, search ServiceSearch) (repository.ServiceFilter, error) {
	if search.ServiceID != nil && search.ServicePoint != nil {
		return repository.ServiceFilter{}, apperrors.NewValidationError("service_id and service_point cannot be provided at the same time", nil)
	}
	if search.ClientID != nil && search.ClientName != nil {
		return repository.ServiceFilter{}, apperrors.NewValidationError("client_id and client_name cannot be provided at the same time", nil)
	}
	if search.TypeName != nil &&
		search.ServiceID == nil && search.ServicePoint == nil &&
		search.ClientID == nil && search.ClientName == nil {
		return repository.ServiceFilter{}, apperrors.NewValidationError(missingParentFilterMessage, nil)
	}

	clientID := search.ClientID
	if search.ClientName != nil {
		clients, err := r.clients.FindByNamePrefix(ctx, *search.ClientName)
		if err != nil {
			return repository.ServiceFilter{}, err
		}
		if len(clients) == 0 {
			return repository.ServiceFilter{}, apperrors.NewValidationError("Client not found", nil)
		}
		clientID = &clients[0].ID
	}

	return repository.ServiceFilter{
		ID:            search.ServiceID,
		ClientID:      clientID,
		PointPrefix:   search.ServicePoint,
		PopNamePrefix: search.PopName,
		TypePrefix:    search.TypeName,
		Limit:         search.Limit,
		Offset:        search.Offset,
	}, nil
}
