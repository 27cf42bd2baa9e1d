package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/internal/scope"
	"github.com/siddhivinayaka18/afh-crm/pkg/jwtutil"
	"github.com/siddhivinayaka18/afh-crm/pkg/response"
	"github.com/siddhivinayaka18/afh-crm/pkg/xerrors"
)

// UserLoader resolves a token's subject to a live account. Loading on every
// request means deactivation takes effect immediately, not at next login.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type AuthMiddleware struct {
	verifier *jwtutil.Manager
	users    UserLoader
}

func NewAuthMiddleware(verifier *jwtutil.Manager, users UserLoader) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		users:    users,
	}
}

func extractToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	if q := r.URL.Query().Get("token"); q != "" {
		return q
	}
	return ""
}

// Require resolves the bearer credential to an Identity and stores it in
// the request context. Downstream handlers never see the raw token.
func (am *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			response.Error(w, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := am.verifier.ParseAndValidate(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		user, err := am.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, xerrors.ErrUserNotFound) {
				response.Error(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			response.Error(w, http.StatusInternalServerError, "Server error")
			return
		}
		if !user.IsActive {
			response.Error(w, http.StatusUnauthorized, "Account is deactivated")
			return
		}

		// Unknown role values are demoted to agent.
		role := user.Role
		if !role.Valid() {
			role = domain.RoleAgent
		}

		ctx := WithIdentity(r.Context(), scope.Identity{UserID: user.ID, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin guards the admin-only route group. It assumes Require has
// already run.
func (am *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := GetIdentity(r.Context())
		if !ok {
			response.Error(w, http.StatusUnauthorized, "No token provided")
			return
		}
		if !ident.IsAdmin() {
			response.Error(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
