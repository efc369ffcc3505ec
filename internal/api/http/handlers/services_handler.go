package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/isp-registry/internal/api/dto"
	"github.com/spec-kit/isp-registry/internal/domain"
	"github.com/spec-kit/isp-registry/internal/repository"
	"github.com/spec-kit/isp-registry/internal/service"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

// ServicesHandler serves service and service type endpoints.
type ServicesHandler struct {
	clients *service.ClientService
}

// NewServicesHandler constructs handler.
func NewServicesHandler(clientService *service.ClientService) *ServicesHandler {
	return &ServicesHandler{clients: clientService}
}

// CreateServiceType POST /service-type.
func (h *ServicesHandler) CreateServiceType(c *fiber.Ctx) error {
	var req dto.CreateServiceTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	serviceType := &domain.ServiceType{Name: req.Name, Description: req.Description}
	if err := h.clients.AddServiceType(c.Context(), serviceType); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": serviceTypeResponse(serviceType)})
}

// ListServiceTypes GET /service-types.
func (h *ServicesHandler) ListServiceTypes(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	filter := repository.ServiceTypeFilter{
		ID:         queryInt64(c, "type_id"),
		NamePrefix: queryString(c, "type_name"),
		Limit:      limit,
		Offset:     offset,
	}
	types, err := h.clients.ListServiceTypes(c.Context(), filter)
	if err != nil {
		return err
	}
	if len(types) == 0 {
		return apperrors.NewNotFound("Service type", nil)
	}
	items := make([]dto.ServiceTypeResponse, 0, len(types))
	for i := range types {
		items = append(items, serviceTypeResponse(&types[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeleteServiceType DELETE /service-type/:id.
func (h *ServicesHandler) DeleteServiceType(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.clients.DeleteServiceType(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "Service type deleted"}})
}

// CreateService POST /service.
func (h *ServicesHandler) CreateService(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClientID <= 0 || req.Point == "" || req.ServiceTypeID <= 0 || req.Bandwidth <= 0 || req.PopID <= 0 {
		return apperrors.NewValidationError("client_id, point, service_type_id, bandwidth, pop_id required", nil)
	}

	svc := &domain.Service{
		ClientID:      req.ClientID,
		Point:         req.Point,
		ServiceTypeID: req.ServiceTypeID,
		Bandwidth:     req.Bandwidth,
		PopID:         req.PopID,
		ExtraInfo:     req.ExtraInfo,
	}
	if err := h.clients.AddService(c.Context(), svc); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": serviceResponse(svc)})
}

// UpdateService PUT /service.
func (h *ServicesHandler) UpdateService(c *fiber.Ctx) error {
	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID <= 0 || req.ClientID <= 0 || req.Point == "" || req.ServiceTypeID <= 0 || req.Bandwidth <= 0 || req.PopID <= 0 {
		return apperrors.NewValidationError("id, client_id, point, service_type_id, bandwidth, pop_id required", nil)
	}

	svc := &domain.Service{
		ID:            req.ID,
		ClientID:      req.ClientID,
		Point:         req.Point,
		ServiceTypeID: req.ServiceTypeID,
		Bandwidth:     req.Bandwidth,
		PopID:         req.PopID,
		ExtraInfo:     req.ExtraInfo,
	}
	if err := h.clients.ModifyService(c.Context(), svc); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceResponse(svc)})
}

// SearchServices GET /services.
func (h *ServicesHandler) SearchServices(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	search := service.ServiceSearch{
		ServiceID:    queryInt64(c, "service_id"),
		ServicePoint: queryString(c, "service_point"),
		ClientID:     queryInt64(c, "client_id"),
		ClientName:   queryString(c, "client_name"),
		PopName:      queryString(c, "pop_name"),
		TypeName:     queryString(c, "service_type"),
		Limit:        limit,
		Offset:       offset,
	}
	services, err := h.clients.SearchServices(c.Context(), search)
	if err != nil {
		return err
	}
	if len(services) == 0 {
		return apperrors.NewNotFound("Service", nil)
	}
	items := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		items = append(items, serviceResponse(&services[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeleteService DELETE /service/:id.
func (h *ServicesHandler) DeleteService(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.clients.DeleteService(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "Service deleted"}})
}

func serviceTypeResponse(serviceType *domain.ServiceType) dto.ServiceTypeResponse {
	return dto.ServiceTypeResponse{
		ID:          serviceType.ID,
		Name:        serviceType.Name,
		Description: serviceType.Description,
	}
}

func serviceResponse(svc *domain.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:            svc.ID,
		ClientID:      svc.ClientID,
		Point:         svc.Point,
		ServiceTypeID: svc.ServiceTypeID,
		Bandwidth:     svc.Bandwidth,
		PopID:         svc.PopID,
		ExtraInfo:     svc.ExtraInfo,
	}
}
