package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/isp-registry/internal/api/dto"
	"github.com/spec-kit/isp-registry/internal/domain"
	"github.com/spec-kit/isp-registry/internal/repository"
	"github.com/spec-kit/isp-registry/internal/service"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

// ClientsHandler serves client and client type endpoints.
type ClientsHandler struct {
	clients *service.ClientService
}

// NewClientsHandler constructs handler.
func NewClientsHandler(clientService *service.ClientService) *ClientsHandler {
	return &ClientsHandler{clients: clientService}
}

// CreateClientType POST /client-type.
func (h *ClientsHandler) CreateClientType(c *fiber.Ctx) error {
	var req dto.CreateClientTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	clientType := &domain.ClientType{Name: req.Name}
	if err := h.clients.AddClientType(c.Context(), clientType); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": clientTypeResponse(clientType)})
}

// ListClientTypes GET /client-types.
func (h *ClientsHandler) ListClientTypes(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	filter := repository.ClientTypeFilter{
		ID:         queryInt64(c, "type_id"),
		NamePrefix: queryString(c, "type_name"),
		Limit:      limit,
		Offset:     offset,
	}
	types, err := h.clients.ListClientTypes(c.Context(), filter)
	if err != nil {
		return err
	}
	if len(types) == 0 {
		return apperrors.NewNotFound("Client type", nil)
	}
	items := make([]dto.ClientTypeResponse, 0, len(types))
	for i := range types {
		items = append(items, clientTypeResponse(&types[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeleteClientType DELETE /client-type/:id.
func (h *ClientsHandler) DeleteClientType(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.clients.DeleteClientType(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "Client type deleted"}})
}

// CreateClient POST /client.
func (h *ClientsHandler) CreateClient(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.ClientTypeID <= 0 {
		return apperrors.NewValidationError("name and client_type_id required", nil)
	}

	client := &domain.Client{Name: req.Name, ClientTypeID: req.ClientTypeID}
	if err := h.clients.AddClient(c.Context(), client); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": clientResponse(client)})
}

// UpdateClient PUT /client.
func (h *ClientsHandler) UpdateClient(c *fiber.Ctx) error {
	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID <= 0 || req.Name == "" || req.ClientTypeID <= 0 {
		return apperrors.NewValidationError("id, name and client_type_id required", nil)
	}

	client := &domain.Client{ID: req.ID, Name: req.Name, ClientTypeID: req.ClientTypeID}
	if err := h.clients.ModifyClient(c.Context(), client); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": clientResponse(client)})
}

// ListClients GET /clients.
func (h *ClientsHandler) ListClients(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	filter := repository.ClientFilter{
		ID:             queryInt64(c, "client_id"),
		NamePrefix:     queryString(c, "client_name"),
		TypeNamePrefix: queryString(c, "client_type"),
		Limit:          limit,
		Offset:         offset,
	}
	clients, err := h.clients.ListClients(c.Context(), filter)
	if err != nil {
		return err
	}
	if len(clients) == 0 {
		return apperrors.NewNotFound("Client", nil)
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		items = append(items, clientResponse(&clients[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeleteClient DELETE /client/:id.
func (h *ClientsHandler) DeleteClient(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.clients.DeleteClient(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "Client deleted"}})
}

func clientTypeResponse(clientType *domain.ClientType) dto.ClientTypeResponse {
	return dto.ClientTypeResponse{ID: clientType.ID, Name: clientType.Name}
}

func clientResponse(client *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:           client.ID,
		Name:         client.Name,
		ClientTypeID: client.ClientTypeID,
	}
}
