package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/isp-registry/internal/api/dto"
	"github.com/spec-kit/isp-registry/internal/domain"
	"github.com/spec-kit/isp-registry/internal/repository"
	"github.com/spec-kit/isp-registry/internal/service"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

// VendorsHandler serves vendor and pop endpoints.
type VendorsHandler struct {
	vendors *service.VendorService
}

// NewVendorsHandler constructs handler.
func NewVendorsHandler(vendorService *service.VendorService) *VendorsHandler {
	return &VendorsHandler{vendors: vendorService}
}

func vendorType(raw string) (domain.VendorType, error) {
	switch domain.VendorType(raw) {
	case domain.VendorTypeLSP, domain.VendorTypeNTTN, domain.VendorTypeISP:
		return domain.VendorType(raw), nil
	default:
		return "", apperrors.NewValidationError("type must be one of LSP, NTTN, ISP", nil)
	}
}

// CreateVendor POST /vendor.
func (h *VendorsHandler) CreateVendor(c *fiber.Ctx) error {
	var req dto.CreateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Type == "" {
		return apperrors.NewValidationError("name and type required", nil)
	}
	vType, err := vendorType(req.Type)
	if err != nil {
		return err
	}

	vendor := &domain.Vendor{Name: req.Name, Type: vType}
	if err := h.vendors.AddVendor(c.Context(), vendor); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": vendorResponse(vendor)})
}

// UpdateVendor PUT /vendor.
func (h *VendorsHandler) UpdateVendor(c *fiber.Ctx) error {
	var req dto.UpdateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID <= 0 || req.Name == "" || req.Type == "" {
		return apperrors.NewValidationError("id, name and type required", nil)
	}
	vType, err := vendorType(req.Type)
	if err != nil {
		return err
	}

	vendor := &domain.Vendor{ID: req.ID, Name: req.Name, Type: vType}
	if err := h.vendors.ModifyVendor(c.Context(), vendor); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": vendorResponse(vendor)})
}

// ListVendors GET /vendors.
func (h *VendorsHandler) ListVendors(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	filter := repository.VendorFilter{
		ID:         queryInt64(c, "vendor_id"),
		NamePrefix: queryString(c, "vendor_name"),
		TypePrefix: queryString(c, "vendor_type"),
		Limit:      limit,
		Offset:     offset,
	}
	vendors, err := h.vendors.ListVendors(c.Context(), filter)
	if err != nil {
		return err
	}
	if len(vendors) == 0 {
		return apperrors.NewNotFound("Vendor", nil)
	}
	items := make([]dto.VendorResponse, 0, len(vendors))
	for i := range vendors {
		items = append(items, vendorResponse(&vendors[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeleteVendor DELETE /vendor/:id.
func (h *VendorsHandler) DeleteVendor(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.vendors.DeleteVendor(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "Vendor deleted"}})
}

// CreatePop POST /pop.
func (h *VendorsHandler) CreatePop(c *fiber.Ctx) error {
	var req dto.CreatePopRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Owner <= 0 {
		return apperrors.NewValidationError("name and owner required", nil)
	}

	pop := &domain.Pop{Name: req.Name, Owner: req.Owner, ExtraInfo: req.ExtraInfo}
	if err := h.vendors.AddPop(c.Context(), pop); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": popResponse(pop)})
}

// UpdatePop PUT /pop.
func (h *VendorsHandler) UpdatePop(c *fiber.Ctx) error {
	var req dto.UpdatePopRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID <= 0 || req.Name == "" || req.Owner <= 0 {
		return apperrors.NewValidationError("id, name and owner required", nil)
	}

	pop := &domain.Pop{ID: req.ID, Name: req.Name, Owner: req.Owner, ExtraInfo: req.ExtraInfo}
	if err := h.vendors.ModifyPop(c.Context(), pop); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": popResponse(pop)})
}

// ListPops GET /pops.
func (h *VendorsHandler) ListPops(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	filter := repository.PopFilter{
		ID:              queryInt64(c, "pop_id"),
		NamePrefix:      queryString(c, "pop_name"),
		OwnerNamePrefix: queryString(c, "pop_owner"),
		Limit:           limit,
		Offset:          offset,
	}
	pops, err := h.vendors.ListPops(c.Context(), filter)
	if err != nil {
		return err
	}
	if len(pops) == 0 {
		return apperrors.NewNotFound("Pop", nil)
	}
	items := make([]dto.PopResponse, 0, len(pops))
	for i := range pops {
		items = append(items, popResponse(&pops[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeletePop DELETE /pop/:id.
func (h *VendorsHandler) DeletePop(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.vendors.DeletePop(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "Pop deleted"}})
}

func vendorResponse(vendor *domain.Vendor) dto.VendorResponse {
	return dto.VendorResponse{ID: vendor.ID, Name: vendor.Name, Type: string(vendor.Type)}
}

func popResponse(pop *domain.Pop) dto.PopResponse {
	return dto.PopResponse{ID: pop.ID, Name: pop.Name, Owner: pop.Owner, ExtraInfo: pop.ExtraInfo}
}
