package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/heartmarshall/tradedesk-backend/internal/auth"
	"github.com/heartmarshall/tradedesk-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAdminToken(token string) (string, error)
}

// RequireAdmin rejects requests without a valid admin bearer token and
// stores the admin subject in the context for audit entries.
func RequireAdmin(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			subject, err := validator.ValidateAdminToken(token)
			if err != nil {
				if errors.Is(err, auth.ErrNotAdmin) {
					writeError(w, http.StatusForbidden, "admin role required")
					return
				}
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := ctxutil.WithAdmin(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
