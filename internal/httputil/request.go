package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ParseJSON decodes JSON from the request body into the given destination.
// The body is capped at 1MB; file bytes travel as multipart, never as JSON.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}

// OptionalIDParam normalizes a query-string reference to an optional id.
// Missing, empty and the literal "null" all mean "root level".
func OptionalIDParam(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" || v == "null" {
		return nil
	}
	return &v
}
