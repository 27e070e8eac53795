package services

import (
	"context"
	"io"

	"drivebox/internal/domain/models"
)

// UploadResult is what the object store reports back for a stored blob
type UploadResult struct {
	PublicID     string
	SecureURL    string
	ResourceType models.ResourceKind
	Size         int64
	Version      int
}

// BlobStore is the object-store capability the file layer depends on.
// The store classifies content itself at upload time; the adapter only
// records what the store reports.
type BlobStore interface {
	// Upload stores the blob under the given owner scope, letting the store
	// infer the resource kind from content
	Upload(ctx context.Context, r io.Reader, ownerID string) (*UploadResult, error)

	// ResolveResourceType determines the kind of an already stored blob by
	// probing the store. Never fails: exhaustion falls back to image.
	ResolveResourceType(ctx context.Context, publicID string) models.ResourceKind

	// SignedURL builds a signed delivery URL for the blob
	SignedURL(publicID string, kind models.ResourceKind) (string, error)

	// Remove destroys the remote blob. Callers treat failures as best-effort.
	Remove(ctx context.Context, publicID string, kind models.ResourceKind) error
}
