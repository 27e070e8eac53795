package repositories

import (
	"context"

	"drivebox/internal/domain/models"
)

// FileRepository defines data access operations for file records
type FileRepository interface {
	// Create inserts a new file record and fills in its ID and timestamp
	Create(ctx context.Context, file *models.File) error

	// GetByID retrieves a file owned by ownerID
	GetByID(ctx context.Context, id, ownerID string) (*models.File, error)

	// Delete removes the file record
	Delete(ctx context.Context, id, ownerID string) error

	// ListInFolder lists files in a folder, newest first.
	// A nil folderID matches only root-level files.
	ListInFolder(ctx context.Context, ownerID string, folderID *string) ([]models.File, error)

	// SetResourceType persists a lazily detected resource kind
	SetResourceType(ctx context.Context, id string, kind models.ResourceKind) error
}
