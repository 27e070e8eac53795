package handler

import (
	"log/slog"
	"net/http"

	"drivebox/internal/domain/models"
	"drivebox/internal/domain/services"
	"drivebox/internal/httputil"
	"drivebox/internal/service"
)

// DriveHandler exposes the aggregated drive view
type DriveHandler struct {
	driveService services.DriveService
	logger       *slog.Logger
}

// NewDriveHandler creates a new drive handler
func NewDriveHandler(driveService services.DriveService, logger *slog.Logger) *DriveHandler {
	return &DriveHandler{
		driveService: driveService,
		logger:       logger,
	}
}

// driveResponse is one folder's combined view with navigation context
type driveResponse struct {
	Breadcrumb []models.BreadcrumbSegment `json:"breadcrumb"`
	Folders    []models.Folder            `json:"folders"`
	Files      []models.File              `json:"files"`
}

// Browse returns the breadcrumb plus the (optionally filtered) contents of
// one folder. The q filter runs over the fetched listing, never in the store.
// GET /api/drive?folder=<id|null>&q=<query>
func (h *DriveHandler) Browse(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	folderID := httputil.OptionalIDParam(r, "folder")

	breadcrumb, err := h.driveService.BreadcrumbFor(r.Context(), ownerID, folderID)
	if err != nil {
		respondDomainError(w, r, h.logger, err)
		return
	}

	listing, err := h.driveService.Browse(r.Context(), ownerID, folderID)
	if err != nil {
		respondDomainError(w, r, h.logger, err)
		return
	}

	listing = service.FilterListing(listing, r.URL.Query().Get("q"))

	httputil.RespondJSON(w, http.StatusOK, driveResponse{
		Breadcrumb: breadcrumb,
		Folders:    listing.Folders,
		Files:      listing.Files,
	})
}

// HealthCheck reports liveness
// GET /health
func (h *DriveHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
