package middleware

import (
	"context"
	"net/http"
	"strings"

	"communitycalendar/internal/delivery/http/helpers"
	"communitycalendar/internal/domain"
	"communitycalendar/internal/i18n"
)

type contextKey string

const userIDKey contextKey = "userID"

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets
// the user ID in the request context. Any valid session is treated as
// admin-equivalent; there is no role check. Missing or invalid tokens get
// 401 and next is not called.
func RequireAuth(verifier domain.TokenVerifier, translator *i18n.Translator) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			unauthorized := func() {
				helpers.WriteJSONError(w, http.StatusUnauthorized,
					translator.T(helpers.Locale(r), "error.unauthorized"))
			}
			auth := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				unauthorized()
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				unauthorized()
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				unauthorized()
				return
			}
			r = r.WithContext(SetUserID(r.Context(), userID))
			next(w, r)
		}
	}
}
