package handler

import (
	"log/slog"
	"net/http"

	"drivebox/internal/domain/models"
	"drivebox/internal/domain/services"
	"drivebox/internal/httputil"
)

// maxUploadBytes caps a single multipart upload
const maxUploadBytes = 100 << 20 // 100MB

// FileHandler handles file HTTP requests
type FileHandler struct {
	fileService services.FileService
	logger      *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService services.FileService, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		logger:      logger,
	}
}

// ListFiles lists files in a folder (root when folder is absent/null)
// GET /api/files?folder=<id|null>
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	folderID := httputil.OptionalIDParam(r, "folder")

	files, err := h.fileService.ListInFolder(r.Context(), ownerID, folderID)
	if err != nil {
		respondDomainError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string][]models.File{"files": files})
}

// Upload stores a multipart upload ("file" field, optional "folder" field)
// POST /api/files
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	var folderID *string
	if v := r.FormValue("folder"); v != "" && v != "null" {
		folderID = &v
	}

	created, err := h.fileService.Upload(r.Context(), &services.UploadRequest{
		OwnerID:  ownerID,
		FolderID: folderID,
		Content:  file,
		Name:     header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
	})
	if err != nil {
		respondDomainError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]*models.File{"file": created})
}

// Download redirects to a signed retrieval URL
// GET /api/files/download/{id}
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	id := r.PathValue("id")

	url, err := h.fileService.ResolveDownloadURL(r.Context(), ownerID, id)
	if err != nil {
		respondDomainError(w, r, h.logger, err)
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

// Delete removes a file (best-effort remote cleanup)
// DELETE /api/files/{id}
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	id := r.PathValue("id")

	if err := h.fileService.Delete(r.Context(), ownerID, id); err != nil {
		respondDomainError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
