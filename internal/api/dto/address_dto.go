package dto

// CreateAddressRequest payload. Exactly one of client_id, vendor_id or
// service_id must be set.
type CreateAddressRequest struct {
	Flat      *string `json:"flat"`
	Floor     *string `json:"floor"`
	Holding   string  `json:"holding"`
	Street    string  `json:"street"`
	Area      string  `json:"area"`
	Thana     string  `json:"thana"`
	District  string  `json:"district"`
	ExtraInfo *string `json:"extra_info"`
	ClientID  *int64  `json:"client_id"`
	VendorID  *int64  `json:"vendor_id"`
	ServiceID *int64  `json:"service_id"`
}

// UpdateAddressRequest payload.
type UpdateAddressRequest struct {
	ID        int64   `json:"id"`
	Flat      *string `json:"flat"`
	Floor     *string `json:"floor"`
	Holding   string  `json:"holding"`
	Street    string  `json:"street"`
	Area      string  `json:"area"`
	Thana     string  `json:"thana"`
	District  string  `json:"district"`
	ExtraInfo *string `json:"extra_info"`
	ClientID  *int64  `json:"client_id"`
	VendorID  *int64  `json:"vendor_id"`
	ServiceID *int64  `json:"service_id"`
}

// AddressResponse mirrors an address row.
type AddressResponse struct {
	ID        int64   `json:"id"`
	Flat      *string `json:"flat"`
	Floor     *string `json:"floor"`
	Holding   string  `json:"holding"`
	Street    string  `json:"street"`
	Area      string  `json:"area"`
	Thana     string  `json:"thana"`
	District  string  `json:"district"`
	ExtraInfo *string `json:"extra_info"`
	ClientID  *int64  `json:"client_id"`
	VendorID  *int64  `json:"vendor_id"`
	ServiceID *int64  `json:"service_id"`
}
