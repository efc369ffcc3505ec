package domain

import "errors"

// ParentKind names the entity a contact or address is attached to.
type ParentKind string

const (
	ParentClient  ParentKind = "client"
	ParentVendor  ParentKind = "vendor"
	ParentService ParentKind = "service"
)

// ErrParentRef is returned when a candidate record does not reference
// exactly one parent entity.
var ErrParentRef = errors.New("must provide exactly one of client_id, service_id, or vendor_id")

// ParentRef is the in-memory form of the three nullable foreign key
// columns on contacts and addresses. A value can only be constructed
// when exactly one of the columns is set, so an invalid "zero or many
// parents" state is unrepresentable past the storage edge.
type ParentRef struct {
	Kind ParentKind
	ID   int64
}

// NewParentRef builds a ParentRef from the three-nullable-column shape.
func NewParentRef(clientID, vendorID, serviceID *int64) (ParentRef, error) {
	set := 0
	ref := ParentRef{}
	if clientID != nil {
		set++
		ref = ParentRef{Kind: ParentClient, ID: *clientID}
	}
	if vendorID != nil {
		set++
		ref = ParentRef{Kind: ParentVendor, ID: *vendorID}
	}
	if serviceID != nil {
		set++
		ref = ParentRef{Kind: ParentService, ID: *serviceID}
	}
	if set != 1 {
		return ParentRef{}, ErrParentRef
	}
	return ref, nil
}

// Columns converts back to the nullable column triple for the storage edge.
func (p ParentRef) Columns() (clientID, vendorID, serviceID *int64) {
	id := p.ID
	switch p.Kind {
	case ParentClient:
		clientID = &id
	case ParentVendor:
		vendorID = &id
	case ParentService:
		serviceID = &id
	}
	return clientID, vendorID, serviceID
}
