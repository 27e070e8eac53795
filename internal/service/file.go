package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"drivebox/internal/domain"
	"drivebox/internal/domain/models"
	"drivebox/internal/domain/repositories"
	"drivebox/internal/domain/services"
)

type fileService struct {
	files   repositories.FileRepository
	folders repositories.FolderRepository
	blobs   services.BlobStore
	logger  *slog.Logger
}

// NewFileService creates a new file service
func NewFileService(
	files repositories.FileRepository,
	folders repositories.FolderRepository,
	blobs services.BlobStore,
	logger *slog.Logger,
) services.FileService {
	return &fileService{
		files:   files,
		folders: folders,
		blobs:   blobs,
		logger:  logger,
	}
}

// Upload stores the blob and persists a file record for it
func (s *fileService) Upload(ctx context.Context, req *services.UploadRequest) (*models.File, error) {
	if req.FolderID != nil && *req.FolderID == "" {
		req.FolderID = nil
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &domain.ValidationError{Message: "file name cannot be empty"}
	}
	if req.Content == nil {
		return nil, &domain.ValidationError{Message: "no file uploaded"}
	}

	if req.FolderID != nil {
		if _, err := s.folders.GetByID(ctx, *req.FolderID, req.OwnerID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.InvalidParentError{Message: "invalid folder"}
			}
			return nil, err
		}
	}

	stored, err := s.blobs.Upload(ctx, req.Content, req.OwnerID)
	if err != nil {
		return nil, err
	}

	file := &models.File{
		Name:         name,
		URL:          stored.SecureURL,
		FolderID:     req.FolderID,
		OwnerID:      req.OwnerID,
		Size:         req.Size,
		MimeType:     req.MimeType,
		PublicID:     stored.PublicID,
		ResourceType: stored.ResourceType,
		Version:      stored.Version,
	}
	if err := s.files.Create(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info("file uploaded",
		"file_id", file.ID,
		"name", file.Name,
		"owner_id", file.OwnerID,
		"size", file.Size,
		"kind", file.ResourceType,
	)

	return file, nil
}

// ListInFolder lists files in a folder, newest first
func (s *fileService) ListInFolder(ctx context.Context, ownerID string, folderID *string) ([]models.File, error) {
	return s.files.ListInFolder(ctx, ownerID, folderID)
}

// Delete removes the record after attempting remote cleanup. The remote
// destroy is best-effort: its failure is logged and the record delete
// proceeds regardless (an orphaned blob beats an undeletable record).
func (s *fileService) Delete(ctx context.Context, ownerID, id string) error {
	file, err := s.files.GetByID(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if file.PublicID != "" {
		kind := file.ResourceType
		if kind == "" {
			kind = s.blobs.ResolveResourceType(ctx, file.PublicID)
		}
		if err := s.blobs.Remove(ctx, file.PublicID, kind); err != nil {
			s.logger.Warn("remote blob removal failed, deleting record anyway",
				"file_id", file.ID,
				"public_id", file.PublicID,
				"error", err,
			)
		}
	}

	if err := s.files.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info("file deleted", "file_id", id, "owner_id", ownerID)

	return nil
}

// DeleteAllInFolder removes every file record in a folder (cascade path)
func (s *fileService) DeleteAllInFolder(ctx context.Context, ownerID string, folderID *string) error {
	files, err := s.files.ListInFolder(ctx, ownerID, folderID)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := s.Delete(ctx, ownerID, file.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}

	return nil
}

// ResolveDownloadURL returns the URL a download should redirect to. A record
// without a locator predates the object store and keeps its public URL;
// everything else gets a freshly signed URL. A kind detected here is written
// back so the next download skips detection.
func (s *fileService) ResolveDownloadURL(ctx context.Context, ownerID, id string) (string, error) {
	file, err := s.files.GetByID(ctx, id, ownerID)
	if err != nil {
		return "", err
	}

	if file.PublicID == "" {
		return file.URL, nil
	}

	kind := file.ResourceType
	if kind == "" {
		kind = s.blobs.ResolveResourceType(ctx, file.PublicID)
		// One-time self-heal; a failed write just means we detect again next time
		if err := s.files.SetResourceType(ctx, file.ID, kind); err != nil {
			s.logger.Warn("failed to persist detected resource kind",
				"file_id", file.ID,
				"kind", kind,
				"error", err,
			)
		}
	}

	return s.blobs.SignedURL(file.PublicID, kind)
}
