package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"drivebox/internal/domain"
	"drivebox/internal/domain/models"
	"drivebox/internal/domain/repositories"
	"drivebox/internal/domain/services"
)

type folderService struct {
	folders repositories.FolderRepository
	files   services.FileService
	cascade bool
	logger  *slog.Logger
}

// NewFolderService creates a new folder service. When cascade is true,
// deleting a folder also removes its descendant folders and files;
// otherwise a delete removes exactly the named node.
func NewFolderService(
	folders repositories.FolderRepository,
	files services.FileService,
	cascade bool,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		folders: folders,
		files:   files,
		cascade: cascade,
		logger:  logger,
	}
}

// CreateFolder creates a new folder under an optional parent
func (s *folderService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	// Normalize empty string to nil for root-level folders
	if req.ParentID != nil && *req.ParentID == "" {
		req.ParentID = nil
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &domain.ValidationError{Message: "folder name cannot be empty"}
	}

	// The parent must be a folder of the same owner
	if req.ParentID != nil {
		if _, err := s.folders.GetByID(ctx, *req.ParentID, req.OwnerID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.InvalidParentError{Message: "parent folder does not exist"}
			}
			return nil, err
		}
	}

	folder := &models.Folder{
		Name:     name,
		ParentID: req.ParentID,
		OwnerID:  req.OwnerID,
	}
	if err := s.folders.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"folder_id", folder.ID,
		"name", folder.Name,
		"owner_id", folder.OwnerID,
		"parent_id", folder.ParentID,
	)

	return folder, nil
}

// GetFolder retrieves a single folder
func (s *folderService) GetFolder(ctx context.Context, ownerID, id string) (*models.Folder, error) {
	return s.folders.GetByID(ctx, id, ownerID)
}

// RenameFolder renames a folder in place
func (s *folderService) RenameFolder(ctx context.Context, ownerID, id, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &domain.ValidationError{Message: "folder name cannot be empty"}
	}

	folder, err := s.folders.Rename(ctx, id, ownerID, name)
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder renamed", "folder_id", id, "name", name, "owner_id", ownerID)

	return folder, nil
}

// DeleteFolder removes a folder, and its descendants when cascade is enabled
func (s *folderService) DeleteFolder(ctx context.Context, ownerID, id string) error {
	if s.cascade {
		if err := s.deleteSubtree(ctx, ownerID, id); err != nil {
			return err
		}
	}

	if err := s.folders.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info("folder deleted", "folder_id", id, "owner_id", ownerID, "cascade", s.cascade)

	return nil
}

// deleteSubtree removes descendant folders depth-first along with their files
func (s *folderService) deleteSubtree(ctx context.Context, ownerID, id string) error {
	children, err := s.folders.ListChildren(ctx, ownerID, &id)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := s.deleteSubtree(ctx, ownerID, child.ID); err != nil {
			return err
		}
		if err := s.folders.Delete(ctx, child.ID, ownerID); err != nil {
			return err
		}
	}

	folderID := id
	return s.files.DeleteAllInFolder(ctx, ownerID, &folderID)
}

// ListChildren lists immediate child folders, newest first
func (s *folderService) ListChildren(ctx context.Context, ownerID string, parentID *string) ([]models.Folder, error) {
	return s.folders.ListChildren(ctx, ownerID, parentID)
}

// AncestorChain walks parent pointers from the folder up to its root and
// returns the chain reordered root-first, ending at the folder itself.
// A broken link anywhere in the chain reads as not-found.
func (s *folderService) AncestorChain(ctx context.Context, ownerID, id string) ([]models.BreadcrumbSegment, error) {
	folder, err := s.folders.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	var chain []models.BreadcrumbSegment
	for {
		fid := folder.ID
		chain = append([]models.BreadcrumbSegment{{ID: &fid, Name: folder.Name}}, chain...)

		if folder.ParentID == nil {
			break
		}
		folder, err = s.folders.GetByID(ctx, *folder.ParentID, ownerID)
		if err != nil {
			return nil, fmt.Errorf("walk ancestors of %s: %w", id, err)
		}
	}

	return chain, nil
}
