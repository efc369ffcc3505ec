package dto

// CreateContactRequest payload. Exactly one of client_id, vendor_id or
// service_id must be set.
type CreateContactRequest struct {
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	Type        string  `json:"type"`
	Phone1      string  `json:"phone1"`
	Phone2      *string `json:"phone2"`
	Phone3      *string `json:"phone3"`
	Email       *string `json:"email"`
	ClientID    *int64  `json:"client_id"`
	VendorID    *int64  `json:"vendor_id"`
	ServiceID   *int64  `json:"service_id"`
}

// UpdateContactRequest payload.
type UpdateContactRequest struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	Type        string  `json:"type"`
	Phone1      string  `json:"phone1"`
	Phone2      *string `json:"phone2"`
	Phone3      *string `json:"phone3"`
	Email       *string `json:"email"`
	ClientID    *int64  `json:"client_id"`
	VendorID    *int64  `json:"vendor_id"`
	ServiceID   *int64  `json:"service_id"`
}

// ContactResponse mirrors a contact row.
type ContactResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	Type        string  `json:"type"`
	Phone1      string  `json:"phone1"`
	Phone2      *string `json:"phone2"`
	Phone3      *string `json:"phone3"`
	Email       *string `json:"email"`
	ClientID    *int64  `json:"client_id"`
	VendorID    *int64  `json:"vendor_id"`
	ServiceID   *int64  `json:"service_id"`
}
