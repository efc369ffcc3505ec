package dto

// CreateClientTypeRequest payload.
type CreateClientTypeRequest struct {
	Name string `json:"name"`
}

// ClientTypeResponse mirrors a client type row.
type ClientTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateClientRequest payload.
type CreateClientRequest struct {
	Name         string `json:"name"`
	ClientTypeID int64  `json:"client_type_id"`
}

// UpdateClientRequest payload.
type UpdateClientRequest struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ClientTypeID int64  `json:"client_type_id"`
}

// ClientResponse mirrors a client row.
type ClientResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ClientTypeID int64  `json:"client_type_id"`
}
