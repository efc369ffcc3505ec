package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/isp-registry/internal/auth"
	"github.com/spec-kit/isp-registry/internal/config"
	"github.com/spec-kit/isp-registry/internal/domain"
	"github.com/spec-kit/isp-registry/internal/repository"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

// AuthService coordinates login and account management.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login verifies the credentials and issues an access token carrying the
// account's scope. The response never distinguishes an unknown username
// from a wrong password.
func (s *AuthService) Login(ctx context.Context, userName, password string) (string, time.Time, error) {
	user, err := s.users.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewUnauthorized("incorrect username or password")
		}
		return "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("incorrect username or password")
	}

	return s.tokenMgr.Generate(user.UserName, user.Scope)
}

// AddUser creates an account with a hashed password.
func (s *AuthService) AddUser(ctx context.Context, user *domain.User, password string) error {
	if _, err := s.users.GetByUserName(ctx, user.UserName); err == nil {
		return apperrors.NewValidationError("User exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Create(ctx, user)
}

// UpdateUser modifies account attributes other than the password.
func (s *AuthService) UpdateUser(ctx context.Context, user *domain.User) error {
	if _, err := s.users.GetByID(ctx, user.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("User", nil)
		}
		return err
	}
	return s.users.Update(ctx, user)
}

// ChangePassword replaces the stored hash for the named account.
func (s *AuthService) ChangePassword(ctx context.Context, userName, newPassword string) error {
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userName, hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("User", nil)
		}
		return err
	}
	return nil
}

// ListUsers returns accounts matching the filter.
func (s *AuthService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	return s.users.List(ctx, filter)
}

// DeleteUser removes the account.
func (s *AuthService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("User", nil)
		}
		return err
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
