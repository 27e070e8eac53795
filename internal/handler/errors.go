package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"drivebox/internal/domain"
	"drivebox/internal/httputil"
)

// respondDomainError maps a domain error to a problem+json response.
// Typed errors carry their own status; anything unclassified is a 500 with
// the cause logged server-side, never leaked to the client.
func respondDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode() < http.StatusInternalServerError {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	// Wrapped sentinels from the repository layer
	switch {
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidParent):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrUpstream):
		logger.Error("object store failure",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
			"request_id", httputil.GetRequestID(r),
		)
		httputil.RespondError(w, http.StatusBadGateway, "object store failure")
	default:
		logger.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
			"request_id", httputil.GetRequestID(r),
		)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
