package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"drivebox/internal/httputil"
)

// RequestID tags every request with an id, echoed in the response header
// and available in the context for log correlation.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", id)

			next.ServeHTTP(w, httputil.WithRequestID(r, id))
		})
	}
}
