package domain

// VendorType enumerates the kinds of upstream vendors.
type VendorType string

const (
	VendorTypeLSP  VendorType = "LSP"
	VendorTypeNTTN VendorType = "NTTN"
	VendorTypeISP  VendorType = "ISP"
)

// Vendor is an upstream provider (last-mile, transmission or peer ISP).
type Vendor struct {
	ID   int64
	Name string
	Type VendorType
}

// Pop is a point of presence owned by a vendor.
type Pop struct {
	ID        int64
	Name      string
	Owner     int64
	ExtraInfo *string
}
