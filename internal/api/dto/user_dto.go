package dto

import "time"

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// CreateUserRequest payload.
type CreateUserRequest struct {
	UserName string  `json:"user_name"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Disabled *bool   `json:"disabled"`
	Password string  `json:"password"`
	Scope    string  `json:"scope"`
}

// UpdateUserRequest payload.
type UpdateUserRequest struct {
	ID       int64   `json:"id"`
	UserName string  `json:"user_name"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Disabled bool    `json:"disabled"`
	Scope    string  `json:"scope"`
}

// PasswordChangeRequest payload for resetting an account password.
type PasswordChangeRequest struct {
	UserName    string `json:"user_name"`
	NewPassword string `json:"new_password"`
}

// UserResponse mirrors a user account without credential material.
type UserResponse struct {
	ID       int64   `json:"id"`
	UserName string  `json:"user_name"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Disabled bool    `json:"disabled"`
	Scope    string  `json:"scope"`
}
