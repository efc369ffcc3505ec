package dto

// CreateVendorRequest payload.
type CreateVendorRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// UpdateVendorRequest payload.
type UpdateVendorRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// VendorResponse mirrors a vendor row.
type VendorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// CreatePopRequest payload.
type CreatePopRequest struct {
	Name      string  `json:"name"`
	Owner     int64   `json:"owner"`
	ExtraInfo *string `json:"extra_info"`
}

// UpdatePopRequest payload.
type UpdatePopRequest struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Owner     int64   `json:"owner"`
	ExtraInfo *string `json:"extra_info"`
}

// PopResponse mirrors a pop row.
type PopResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Owner     int64   `json:"owner"`
	ExtraInfo *string `json:"extra_info"`
}
