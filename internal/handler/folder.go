package handler

import (
	"log/slog"
	"net/http"

	"drivebox/internal/domain/models"
	"drivebox/internal/domain/services"
	"drivebox/internal/httputil"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folderService services.FolderService
	logger        *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService services.FolderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		logger:        logger,
	}
}

// ListFolders lists folders under a parent (root when parent is absent/null)
// GET /api/folders?parent=<id|null>
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	parentID := httputil.OptionalIDParam(r, "parent")

	folders, err := h.folderService.ListChildren(r.Context(), ownerID, parentID)
	if err != nil {
		respondDomainError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string][]models.Folder{"folders": folders})
}

// CreateFolder creates a new folder
// POST /api/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req services.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.OwnerID = httputil.GetUserID(r)

	folder, err := h.folderService.CreateFolder(r.Context(), &req)
	if err != nil {
		respondDomainError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]*models.Folder{"folder": folder})
}

// GetFolder retrieves a single folder
// GET /api/folders/{id}
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	id := r.PathValue("id")

	folder, err := h.folderService.GetFolder(r.Context(), ownerID, id)
	if err != nil {
		respondDomainError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]*models.Folder{"folder": folder})
}

// RenameFolder renames a folder
// PATCH /api/folders/{id}
func (h *FolderHandler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	id := r.PathValue("id")

	var req struct {
		Name string `json:"name"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folder, err := h.folderService.RenameFolder(r.Context(), ownerID, id, req.Name)
	if err != nil {
		respondDomainError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]*models.Folder{"folder": folder})
}

// DeleteFolder removes a folder (non-cascading unless configured otherwise)
// DELETE /api/folders/{id}
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	id := r.PathValue("id")

	if err := h.folderService.DeleteFolder(r.Context(), ownerID, id); err != nil {
		respondDomainError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// GetAncestors returns the ancestor chain from root to the folder
// GET /api/folders/ancestors/{id}
func (h *FolderHandler) GetAncestors(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	id := r.PathValue("id")

	chain, err := h.folderService.AncestorChain(r.Context(), ownerID, id)
	if err != nil {
		respondDomainError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string][]models.BreadcrumbSegment{"ancestors": chain})
}
