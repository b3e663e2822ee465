package auth

import (
	"log/slog"
	"net/http"

	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/rbac"
)

// RoleAuthorization gates routes on the caller's normalized role.
type RoleAuthorization struct {
	logger *slog.Logger
}

func NewRoleAuthorization(logger *slog.Logger) *RoleAuthorization {
	return &RoleAuthorization{logger: logger}
}

// Require allows only callers whose role matches one of the given roles.
// An empty role list leaves the route unrestricted beyond authentication.
func (ra *RoleAuthorization) Require(roles ...rbac.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := internal.IdentityFromContext(r.Context())
			if !ok {
				ra.logger.Warn("authorization check failed: identity not found in context")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !rbac.MatchesAny(rbac.ParseRole(identity.Role), roles) {
				ra.logger.Warn("access denied: insufficient role",
					"user_id", identity.UserID,
					"user_role", identity.Role,
					"required_roles", roles)
				http.Error(w, "Forbidden: insufficient role", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
