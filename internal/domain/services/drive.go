package services

import (
	"context"

	"drivebox/internal/domain/models"
)

// DriveService is the single entry point the UI consumes: it aggregates the
// folder tree and file records into one navigable listing.
type DriveService interface {
	// Browse fetches the folders and files under one parent
	Browse(ctx context.Context, ownerID string, folderID *string) (*Listing, error)

	// BreadcrumbFor computes the root-to-current navigation path
	BreadcrumbFor(ctx context.Context, ownerID string, folderID *string) ([]models.BreadcrumbSegment, error)

	// DeleteFolder removes a folder and returns the listing with that
	// folder's files filtered out of the client-held view
	DeleteFolder(ctx context.Context, ownerID, id string, view *Listing) (*Listing, error)
}

// Listing is the combined content of one folder
type Listing struct {
	Folders []models.Folder `json:"folders"`
	Files   []models.File   `json:"files"`
}
