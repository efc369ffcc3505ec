package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/isp-registry/internal/api/dto"
	"github.com/spec-kit/isp-registry/internal/domain"
	"github.com/spec-kit/isp-registry/internal/service"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

// AddressesHandler serves address endpoints.
type AddressesHandler struct {
	addresses *service.AddressService
}

// NewAddressesHandler constructs handler.
func NewAddressesHandler(addressService *service.AddressService) *AddressesHandler {
	return &AddressesHandler{addresses: addressService}
}

// CreateAddress POST /address.
func (h *AddressesHandler) CreateAddress(c *fiber.Ctx) error {
	var req dto.CreateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Holding == "" || req.Street == "" || req.Area == "" || req.Thana == "" || req.District == "" {
		return apperrors.NewValidationError("holding, street, area, thana, district required", nil)
	}

	address, err := h.addresses.AddAddress(c.Context(), service.AddressInput{
		Flat:      req.Flat,
		Floor:     req.Floor,
		Holding:   req.Holding,
		Street:    req.Street,
		Area:      req.Area,
		Thana:     req.Thana,
		District:  req.District,
		ExtraInfo: req.ExtraInfo,
		ClientID:  req.ClientID,
		VendorID:  req.VendorID,
		ServiceID: req.ServiceID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": addressResponse(address)})
}

// UpdateAddress PUT /address.
func (h *AddressesHandler) UpdateAddress(c *fiber.Ctx) error {
	var req dto.UpdateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID <= 0 || req.Holding == "" || req.Street == "" || req.Area == "" || req.Thana == "" || req.District == "" {
		return apperrors.NewValidationError("id, holding, street, area, thana, district required", nil)
	}

	address, err := h.addresses.ModifyAddress(c.Context(), req.ID, service.AddressInput{
		Flat:      req.Flat,
		Floor:     req.Floor,
		Holding:   req.Holding,
		Street:    req.Street,
		Area:      req.Area,
		Thana:     req.Thana,
		District:  req.District,
		ExtraInfo: req.ExtraInfo,
		ClientID:  req.ClientID,
		VendorID:  req.VendorID,
		ServiceID: req.ServiceID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": addressResponse(address)})
}

// SearchAddresses GET /addresses.
func (h *AddressesHandler) SearchAddresses(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	search := service.AddressSearch{
		Selector: service.SearchSelector{
			ClientID:     queryInt64(c, "client_id"),
			ServiceID:    queryInt64(c, "service_id"),
			VendorID:     queryInt64(c, "vendor_id"),
			ClientName:   queryString(c, "client_name"),
			ServicePoint: queryString(c, "service_point"),
			VendorName:   queryString(c, "vendor_name"),
		},
		ID:       queryInt64(c, "address_id"),
		Holding:  queryString(c, "holding"),
		Street:   queryString(c, "street"),
		Area:     queryString(c, "area"),
		Thana:    queryString(c, "thana"),
		District: queryString(c, "district"),
		Limit:    limit,
		Offset:   offset,
	}
	addresses, err := h.addresses.SearchAddresses(c.Context(), search)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		return apperrors.NewNotFound("Address", nil)
	}
	items := make([]dto.AddressResponse, 0, len(addresses))
	for i := range addresses {
		items = append(items, addressResponse(&addresses[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeleteAddress DELETE /address/:id.
func (h *AddressesHandler) DeleteAddress(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.addresses.DeleteAddress(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "Address deleted"}})
}

func addressResponse(address *domain.Address) dto.AddressResponse {
	clientID, vendorID, serviceID := address.Parent.Columns()
	return dto.AddressResponse{
		ID:        address.ID,
		Flat:      address.Flat,
		Floor:     address.Floor,
		Holding:   address.Holding,
		Street:    address.Street,
		Area:      address.Area,
		Thana:     address.Thana,
		District:  address.District,
		ExtraInfo: address.ExtraInfo,
		ClientID:  clientID,
		VendorID:  vendorID,
		ServiceID: serviceID,
	}
}
