package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/isp-registry/internal/api/dto"
	"github.com/spec-kit/isp-registry/internal/domain"
	"github.com/spec-kit/isp-registry/internal/service"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

// ContactsHandler serves contact endpoints.
type ContactsHandler struct {
	contacts *service.ContactService
}

// NewContactsHandler constructs handler.
func NewContactsHandler(contactService *service.ContactService) *ContactsHandler {
	return &ContactsHandler{contacts: contactService}
}

func contactType(raw string) (domain.ContactType, error) {
	switch domain.ContactType(raw) {
	case domain.ContactTypeAdmin, domain.ContactTypeTechnical, domain.ContactTypeBilling:
		return domain.ContactType(raw), nil
	default:
		return "", apperrors.NewValidationError("type must be one of Admin, Technical, Billing", nil)
	}
}

// CreateContact POST /contact.
func (h *ContactsHandler) CreateContact(c *fiber.Ctx) error {
	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Designation == "" || req.Phone1 == "" {
		return apperrors.NewValidationError("name, designation, phone1 required", nil)
	}
	cType, err := contactType(req.Type)
	if err != nil {
		return err
	}

	contact, err := h.contacts.AddContact(c.Context(), service.ContactInput{
		Name:        req.Name,
		Designation: req.Designation,
		Type:        cType,
		Phone1:      req.Phone1,
		Phone2:      req.Phone2,
		Phone3:      req.Phone3,
		Email:       req.Email,
		ClientID:    req.ClientID,
		VendorID:    req.VendorID,
		ServiceID:   req.ServiceID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": contactResponse(contact)})
}

// UpdateContact PUT /contact.
func (h *ContactsHandler) UpdateContact(c *fiber.Ctx) error {
	var req dto.UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID <= 0 || req.Name == "" || req.Designation == "" || req.Phone1 == "" {
		return apperrors.NewValidationError("id, name, designation, phone1 required", nil)
	}
	cType, err := contactType(req.Type)
	if err != nil {
		return err
	}

	contact, err := h.contacts.ModifyContact(c.Context(), req.ID, service.ContactInput{
		Name:        req.Name,
		Designation: req.Designation,
		Type:        cType,
		Phone1:      req.Phone1,
		Phone2:      req.Phone2,
		Phone3:      req.Phone3,
		Email:       req.Email,
		ClientID:    req.ClientID,
		VendorID:    req.VendorID,
		ServiceID:   req.ServiceID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contactResponse(contact)})
}

// SearchContacts GET /contacts.
func (h *ContactsHandler) SearchContacts(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	search := service.ContactSearch{
		Selector: service.SearchSelector{
			ClientID:     queryInt64(c, "client_id"),
			ServiceID:    queryInt64(c, "service_id"),
			VendorID:     queryInt64(c, "vendor_id"),
			ClientName:   queryString(c, "client_name"),
			ServicePoint: queryString(c, "service_point"),
			VendorName:   queryString(c, "vendor_name"),
		},
		ID:          queryInt64(c, "contact_id"),
		Name:        queryString(c, "name"),
		Designation: queryString(c, "designation"),
		Type:        queryString(c, "type"),
		Phone:       queryString(c, "phone"),
		Email:       queryString(c, "email"),
		Limit:       limit,
		Offset:      offset,
	}
	contacts, err := h.contacts.SearchContacts(c.Context(), search)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		return apperrors.NewNotFound("Contact", nil)
	}
	items := make([]dto.ContactResponse, 0, len(contacts))
	for i := range contacts {
		items = append(items, contactResponse(&contacts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeleteContact DELETE /contact/:id.
func (h *ContactsHandler) DeleteContact(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.contacts.DeleteContact(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "Contact deleted"}})
}

func contactResponse(contact *domain.Contact) dto.ContactResponse {
	clientID, vendorID, serviceID := contact.Parent.Columns()
	return dto.ContactResponse{
		ID:          contact.ID,
		Name:        contact.Name,
		Designation: contact.Designation,
		Type:        string(contact.Type),
		Phone1:      contact.Phone1,
		Phone2:      contact.Phone2,
		Phone3:      contact.Phone3,
		Email:       contact.Email,
		ClientID:    clientID,
		VendorID:    vendorID,
		ServiceID:   serviceID,
	}
}
