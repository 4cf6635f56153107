package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/brochuregen/backend/internal/shared/apperror"
	"github.com/brochuregen/backend/internal/shared/token"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const principalKey contextKey = "principal"

// GetPrincipal extracts the authenticated principal email from the request context
func GetPrincipal(ctx context.Context) string {
	email, _ := ctx.Value(principalKey).(string)
	return email
}

// NewAuthMiddleware creates authentication middleware that verifies the bearer
// credential on incoming requests and adds the resolved principal email to the
// request context. Requests without a valid token are rejected with 401 before
// any handler runs.
func NewAuthMiddleware(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apperror.WriteError(w, r, apperror.NewAuthError("missing authorization header", nil))
				return
			}

			// Expected format: "Bearer {token}"
			scheme, credential, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") {
				apperror.WriteError(w, r, apperror.NewAuthError("authorization header must be Bearer {token}", nil))
				return
			}

			email, err := tokens.Verify(credential)
			if err != nil {
				apperror.WriteError(w, r, apperror.NewAuthError("invalid or expired token", err))
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
