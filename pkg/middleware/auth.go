package middleware

import (
	"net/http"
	"strings"

	"github.com/merchstore/merchstore/pkg/auth"
	"github.com/merchstore/merchstore/pkg/response"
)

// Auth rejects requests without a valid bearer token and stores the caller's
// identity in the request context. Missing, malformed, and expired tokens
// get the identical 401 so nothing can be probed from the distinction.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Unauthorized(w, "Missing or invalid authorization header")
			return
		}

		claims, err := auth.ValidateToken(strings.TrimSpace(token))
		if err != nil || claims.UserID == 0 {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := auth.WithIdentity(r.Context(), auth.Identity{UserID: claims.UserID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
