package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/service"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/response"
)

type contextKey string

const (
	UserKey  contextKey = "user"
	TokenKey contextKey = "token"
)

type AuthMiddleware struct {
	guard service.AccessGuard
}

func NewAuthMiddleware(guard service.AccessGuard) *AuthMiddleware {
	return &AuthMiddleware{
		guard: guard,
	}
}

// Authenticate admits any active user with a live token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return m.RequireRole()(next)
}

// RequireRole authenticates the request and admits only the given roles. With
// no roles it behaves like Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Authorization header is required")
				return
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				response.Unauthorized(w, "Invalid authorization header format")
				return
			}

			user, err := m.guard.Authorize(r.Context(), parts[1], roles...)
			if err != nil {
				response.AppError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user, parts[1])))
		})
	}
}

// WithUser stores the authenticated user and the raw token on ctx.
func WithUser(ctx context.Context, user *entity.User, token string) context.Context {
	ctx = context.WithValue(ctx, UserKey, user)
	return context.WithValue(ctx, TokenKey, token)
}

// GetUserFromContext extracts the authenticated user from context
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(UserKey).(*entity.User)
	return user, ok && user != nil
}

// GetTokenFromContext extracts the bearer token from context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
