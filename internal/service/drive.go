package service

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"drivebox/internal/domain/models"
	"drivebox/internal/domain/services"
)

type driveService struct {
	folderSvc services.FolderService
	fileSvc   services.FileService
	logger    *slog.Logger
}

// NewDriveService creates the façade the UI consumes
func NewDriveService(folderSvc services.FolderService, fileSvc services.FileService, logger *slog.Logger) services.DriveService {
	return &driveService{
		folderSvc: folderSvc,
		fileSvc:   fileSvc,
		logger:    logger,
	}
}

// Browse fetches the folders and files under one parent in parallel
func (s *driveService) Browse(ctx context.Context, ownerID string, folderID *string) (*services.Listing, error) {
	listing := &services.Listing{
		Folders: []models.Folder{},
		Files:   []models.File{},
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		folders, err := s.folderSvc.ListChildren(ctx, ownerID, folderID)
		if err != nil {
			return err
		}
		listing.Folders = folders
		return nil
	})
	g.Go(func() error {
		files, err := s.fileSvc.ListInFolder(ctx, ownerID, folderID)
		if err != nil {
			return err
		}
		listing.Files = files
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return listing, nil
}

// BreadcrumbFor computes the root-to-current navigation path. The synthetic
// root stands alone when no folder is selected.
func (s *driveService) BreadcrumbFor(ctx context.Context, ownerID string, folderID *string) ([]models.BreadcrumbSegment, error) {
	root := models.BreadcrumbSegment{ID: nil, Name: models.RootFolderName}
	if folderID == nil {
		return []models.BreadcrumbSegment{root}, nil
	}

	chain, err := s.folderSvc.AncestorChain(ctx, ownerID, *folderID)
	if err != nil {
		return nil, err
	}

	return append([]models.BreadcrumbSegment{root}, chain...), nil
}

// DeleteFolder removes the folder and drops its files from the client-held
// view. This only adjusts the in-memory listing: persisted records under the
// folder are untouched unless the folder service cascades.
func (s *driveService) DeleteFolder(ctx context.Context, ownerID, id string, view *services.Listing) (*services.Listing, error) {
	if err := s.folderSvc.DeleteFolder(ctx, ownerID, id); err != nil {
		return nil, err
	}
	if view == nil {
		return nil, nil
	}

	filtered := &services.Listing{
		Folders: make([]models.Folder, 0, len(view.Folders)),
		Files:   make([]models.File, 0, len(view.Files)),
	}
	for _, f := range view.Folders {
		if f.ID != id {
			filtered.Folders = append(filtered.Folders, f)
		}
	}
	for _, f := range view.Files {
		if f.FolderID == nil || *f.FolderID != id {
			filtered.Files = append(filtered.Files, f)
		}
	}

	return filtered, nil
}

// FilterListing applies the search predicate to a listing: case-insensitive
// substring match on item names, where an empty query matches everything.
// Search never reaches the persistence layer.
func FilterListing(listing *services.Listing, query string) *services.Listing {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return listing
	}

	filtered := &services.Listing{
		Folders: []models.Folder{},
		Files:   []models.File{},
	}
	for _, f := range listing.Folders {
		if strings.Contains(strings.ToLower(f.Name), query) {
			filtered.Folders = append(filtered.Folders, f)
		}
	}
	for _, f := range listing.Files {
		if strings.Contains(strings.ToLower(f.Name), query) {
			filtered.Files = append(filtered.Files, f)
		}
	}

	return filtered
}
