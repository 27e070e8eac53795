package services

import (
	"context"

	"drivebox/internal/domain/models"
)

// FolderService handles folder tree business logic
type FolderService interface {
	// CreateFolder creates a new folder under an optional parent
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)

	// GetFolder retrieves a single folder
	GetFolder(ctx context.Context, ownerID, id string) (*models.Folder, error)

	// RenameFolder renames a folder in place (never moves it)
	RenameFolder(ctx context.Context, ownerID, id, name string) (*models.Folder, error)

	// DeleteFolder removes a folder. Descendants are removed only when the
	// service was configured with cascade enabled.
	DeleteFolder(ctx context.Context, ownerID, id string) error

	// ListChildren lists immediate child folders, newest first
	ListChildren(ctx context.Context, ownerID string, parentID *string) ([]models.Folder, error)

	// AncestorChain walks parent pointers and returns the path from the
	// topmost ancestor down to the folder itself
	AncestorChain(ctx context.Context, ownerID, id string) ([]models.BreadcrumbSegment, error)
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	OwnerID  string  `json:"-"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent,omitempty"` // nil for root
}
