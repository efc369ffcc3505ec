package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/isp-registry/internal/domain"
	apperrors "github.com/spec-kit/isp-registry/pkg/util"
)

// Static per-operation scope sets. Mutating endpoints require an editing
// scope, search endpoints accept any authenticated scope, and account
// management is reserved for admins.
var (
	ReadScopes  = []domain.Scope{domain.ScopeAdmin, domain.ScopeEditor, domain.ScopeUser}
	WriteScopes = []domain.Scope{domain.ScopeAdmin, domain.ScopeEditor}
	AdminScopes = []domain.Scope{domain.ScopeAdmin}
)

// RequireScopes ensures the token's scope is a member of the allowed set.
// The accepted scopes are echoed in the failure details for client-side
// diagnostics; nothing about why authentication itself failed is leaked.
func RequireScopes(allowed ...domain.Scope) fiber.Handler {
	allowedSet := make(map[domain.Scope]struct{}, len(allowed))
	names := make([]string, 0, len(allowed))
	for _, scope := range allowed {
		allowedSet[scope] = struct{}{}
		names = append(names, string(scope))
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("not authenticated")
		}
		if _, exists := allowedSet[principal.Scope]; !exists {
			return apperrors.NewDomainError("UNAUTHORIZED", "not enough permissions",
				fiber.StatusUnauthorized, map[string]any{"accepted_scopes": names})
		}
		return c.Next()
	}
}
