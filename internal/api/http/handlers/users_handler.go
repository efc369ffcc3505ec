package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/isp-registry/internal/api/dto"
	"github.com/spec-kit/isp-registry/internal/domain"
	"github.com/spec-kit/isp-registry/internal/repository"
	"github.com/spec-kit/isp-registry/internal/service"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

// UsersHandler serves login and account administration endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Login POST /token. Accepts form-encoded credentials.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	userName := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	if userName == "" || password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	token, expiresAt, err := h.auth.Login(c.Context(), userName, password)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// CreateUser POST /user.
func (h *UsersHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserName == "" || req.Email == "" || req.Password == "" || req.Scope == "" {
		return apperrors.NewValidationError("user_name, email, password, scope required", nil)
	}

	user := &domain.User{
		UserName: req.UserName,
		Email:    req.Email,
		FullName: req.FullName,
		Scope:    domain.Scope(req.Scope),
	}
	if req.Disabled != nil {
		user.Disabled = *req.Disabled
	}
	if err := h.auth.AddUser(c.Context(), user, req.Password); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": userResponse(user)})
}

// UpdateUser PUT /user.
func (h *UsersHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ID <= 0 || req.UserName == "" || req.Email == "" || req.Scope == "" {
		return apperrors.NewValidationError("id, user_name, email, scope required", nil)
	}

	user := &domain.User{
		ID:       req.ID,
		UserName: req.UserName,
		Email:    req.Email,
		FullName: req.FullName,
		Disabled: req.Disabled,
		Scope:    domain.Scope(req.Scope),
	}
	if err := h.auth.UpdateUser(c.Context(), user); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// ChangePassword PUT /user/password.
func (h *UsersHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserName == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("user_name and new_password required", nil)
	}
	if err := h.auth.ChangePassword(c.Context(), req.UserName, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "Password updated"}})
}

// ListUsers GET /users.
func (h *UsersHandler) ListUsers(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	filter := repository.UserFilter{
		ID:             queryInt64(c, "user_id"),
		UserNamePrefix: queryString(c, "user_name"),
		ScopePrefix:    queryString(c, "scope"),
		Limit:          limit,
		Offset:         offset,
	}
	if disabled := c.Query("disabled"); disabled != "" {
		val := disabled == "true"
		filter.Disabled = &val
	}

	users, err := h.auth.ListUsers(c.Context(), filter)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return apperrors.NewNotFound("User", nil)
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, userResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeleteUser DELETE /user/:id.
func (h *UsersHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.auth.DeleteUser(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "User deleted"}})
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		FullName: user.FullName,
		Disabled: user.Disabled,
		Scope:    string(user.Scope),
	}
}
