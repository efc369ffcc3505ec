package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/isp-registry/internal/domain"
	"github.com/spec-kit/isp-registry/internal/repository"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }
func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }
func (f *fakeUserRepo) UpdatePassword(ctx context.Context, userName, passwordHash string) error {
	return nil
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}
func (f *fakeUserRepo) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	if user, ok := f.users[userName]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}
func (f *fakeUserRepo) List(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error { return nil }

func newTestApp(t *testing.T, users *fakeUserRepo, scopes []domain.Scope) (*fiber.App, *TokenManager) {
	t.Helper()

	tm := NewTokenManager(testSecret, time.Minute)
	mw := NewAuthMiddleware(tm, users)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) (err error) {
		defer func() {
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(fiber.Map{"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
					"details": domainErr.Details,
				}})
				err = nil
			}
		}()
		return c.Next()
	})
	app.Get("/protected", mw.Handle, RequireScopes(scopes...), func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"user": principal.User.UserName})
	})
	return app, tm
}

func decodeError(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var payload struct {
		Error map[string]any `json:"error"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	return payload.Error
}

func TestMiddlewareAllowsValidToken(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*domain.User{
		"jdoe": {ID: 1, UserName: "jdoe", Email: "jdoe@example.com", Scope: domain.ScopeEditor},
	}}
	app, tm := newTestApp(t, users, WriteScopes)

	token, _, err := tm.Generate("jdoe", domain.ScopeEditor)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	app, _ := newTestApp(t, &fakeUserRepo{}, ReadScopes)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsForgedToken(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*domain.User{
		"jdoe": {ID: 1, UserName: "jdoe", Scope: domain.ScopeEditor},
	}}
	app, _ := newTestApp(t, users, ReadScopes)

	forged := NewTokenManager("wrong-secret", time.Minute)
	token, _, err := forged.Generate("jdoe", domain.ScopeEditor)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	errBody := decodeError(t, resp.Body)
	assert.Equal(t, "could not validate credentials", errBody["message"])
}

func TestMiddlewareRejectsUnknownSubject(t *testing.T) {
	app, tm := newTestApp(t, &fakeUserRepo{}, ReadScopes)

	token, _, err := tm.Generate("ghost", domain.ScopeUser)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsDisabledUser(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*domain.User{
		"jdoe": {ID: 1, UserName: "jdoe", Disabled: true, Scope: domain.ScopeAdmin},
	}}
	app, tm := newTestApp(t, users, ReadScopes)

	token, _, err := tm.Generate("jdoe", domain.ScopeAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	errBody := decodeError(t, resp.Body)
	assert.Equal(t, "Inactive user", errBody["message"])
}

func TestMiddlewareRejectsInsufficientScope(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*domain.User{
		"jdoe": {ID: 1, UserName: "jdoe", Scope: domain.ScopeUser},
	}}
	app, tm := newTestApp(t, users, AdminScopes)

	token, _, err := tm.Generate("jdoe", domain.ScopeUser)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	errBody := decodeError(t, resp.Body)
	assert.Equal(t, "not enough permissions", errBody["message"])
	details, ok := errBody["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"admin"}, details["accepted_scopes"])
}

func TestMiddlewareRejectsMalformedClaims(t *testing.T) {
	app, _ := newTestApp(t, &fakeUserRepo{}, ReadScopes)

	// Well signed token without a scope claim.
	tm := NewTokenManager(testSecret, time.Minute)
	token, _, err := tm.Generate("jdoe", "")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotAcceptable, resp.StatusCode)
}
