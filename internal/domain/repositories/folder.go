package repositories

import (
	"context"

	"drivebox/internal/domain/models"
)

// FolderRepository defines data access operations for folders.
// Every read and mutation is scoped to an owner; an id belonging to another
// owner is indistinguishable from a missing one.
type FolderRepository interface {
	// Create inserts a new folder and fills in its ID and timestamps
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder owned by ownerID
	GetByID(ctx context.Context, id, ownerID string) (*models.Folder, error)

	// Rename updates the folder's name and returns the updated document
	Rename(ctx context.Context, id, ownerID, name string) (*models.Folder, error)

	// Delete removes exactly the named folder
	Delete(ctx context.Context, id, ownerID string) error

	// ListChildren lists immediate child folders, newest first.
	// A nil parentID matches only root-level folders.
	ListChildren(ctx context.Context, ownerID string, parentID *string) ([]models.Folder, error)
}
