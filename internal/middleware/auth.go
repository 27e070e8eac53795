package middleware

import (
	"net/http"
	"strings"

	"drivebox/internal/domain/services"
	"drivebox/internal/httputil"
)

// Auth gates every request behind a bearer token. The token is resolved to a
// live user (a token can outlive its account); the user id lands in the
// request context for the handlers. Signup, login and health stay open.
func Auth(authSvc services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing Authorization header")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid Authorization format")
				return
			}

			user, err := authSvc.ResolveToken(r.Context(), token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, user.ID))
		})
	}
}

func isPublicPath(path string) bool {
	return strings.HasPrefix(path, "/api/auth/") || path == "/health"
}
