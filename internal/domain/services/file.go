package services

import (
	"context"
	"io"

	"drivebox/internal/domain/models"
)

// FileService handles file record business logic
type FileService interface {
	// Upload stores the blob and persists a file record for it
	Upload(ctx context.Context, req *UploadRequest) (*models.File, error)

	// ListInFolder lists files in a folder, newest first
	ListInFolder(ctx context.Context, ownerID string, folderID *string) ([]models.File, error)

	// Delete removes the record; remote blob cleanup is best-effort and the
	// record delete proceeds even when it fails
	Delete(ctx context.Context, ownerID, id string) error

	// ResolveDownloadURL returns the URL a download should redirect to,
	// preferring a freshly signed URL over the stored public one
	ResolveDownloadURL(ctx context.Context, ownerID, id string) (string, error)

	// DeleteAllInFolder removes every file record in a folder (cascade path)
	DeleteAllInFolder(ctx context.Context, ownerID string, folderID *string) error
}

// UploadRequest represents a multipart file upload
type UploadRequest struct {
	OwnerID  string
	FolderID *string
	Content  io.Reader
	Name     string
	MimeType string
	Size     int64
}
