package dto

// CreateServiceTypeRequest payload.
type CreateServiceTypeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ServiceTypeResponse mirrors a service type row.
type ServiceTypeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateServiceRequest payload.
type CreateServiceRequest struct {
	ClientID      int64   `json:"client_id"`
	Point         string  `json:"point"`
	ServiceTypeID int64   `json:"service_type_id"`
	Bandwidth     int64   `json:"bandwidth"`
	PopID         int64   `json:"pop_id"`
	ExtraInfo     *string `json:"extra_info"`
}

// UpdateServiceRequest payload.
type UpdateServiceRequest struct {
	ID            int64   `json:"id"`
	ClientID      int64   `json:"client_id"`
	Point         string  `json:"point"`
	ServiceTypeID int64   `json:"service_type_id"`
	Bandwidth     int64   `json:"bandwidth"`
	PopID         int64   `json:"pop_id"`
	ExtraInfo     *string `json:"extra_info"`
}

// ServiceResponse mirrors a service row.
type ServiceResponse struct {
	ID            int64   `json:"id"`
	ClientID      int64   `json:"client_id"`
	Point         string  `json:"point"`
	ServiceTypeID int64   `json:"service_type_id"`
	Bandwidth     int64   `json:"bandwidth"`
	PopID         int64   `json:"pop_id"`
	ExtraInfo     *string `json:"extra_info"`
}
