package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"drivebox/internal/domain"
	"drivebox/internal/domain/models"
	"drivebox/internal/domain/services"
)

// In-memory repository and blob store fakes shared by the service tests.
// Listings reproduce the store's newest-first ordering.

type fakeFolderRepo struct {
	folders []*models.Folder
	nextID  int
}

func (r *fakeFolderRepo) Create(ctx context.Context, folder *models.Folder) error {
	r.nextID++
	folder.ID = "folder-" + strconv.Itoa(r.nextID)
	folder.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Second)
	folder.UpdatedAt = folder.CreatedAt
	clone := *folder
	r.folders = append(r.folders, &clone)
	return nil
}

func (r *fakeFolderRepo) GetByID(ctx context.Context, id, ownerID string) (*models.Folder, error) {
	for _, f := range r.folders {
		if f.ID == id && f.OwnerID == ownerID {
			clone := *f
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
}

func (r *fakeFolderRepo) Rename(ctx context.Context, id, ownerID, name string) (*models.Folder, error) {
	for _, f := range r.folders {
		if f.ID == id && f.OwnerID == ownerID {
			f.Name = name
			f.UpdatedAt = time.Now()
			clone := *f
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
}

func (r *fakeFolderRepo) Delete(ctx context.Context, id, ownerID string) error {
	for i, f := range r.folders {
		if f.ID == id && f.OwnerID == ownerID {
			r.folders = append(r.folders[:i], r.folders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
}

func (r *fakeFolderRepo) ListChildren(ctx context.Context, ownerID string, parentID *string) ([]models.Folder, error) {
	var out []models.Folder
	// Newest first: iterate in reverse insertion order
	for i := len(r.folders) - 1; i >= 0; i-- {
		f := r.folders[i]
		if f.OwnerID != ownerID || !sameRef(f.ParentID, parentID) {
			continue
		}
		out = append(out, *f)
	}
	return out, nil
}

type fakeFileRepo struct {
	files  []*models.File
	nextID int
}

func (r *fakeFileRepo) Create(ctx context.Context, file *models.File) error {
	r.nextID++
	file.ID = "file-" + strconv.Itoa(r.nextID)
	file.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Second)
	clone := *file
	r.files = append(r.files, &clone)
	return nil
}

func (r *fakeFileRepo) GetByID(ctx context.Context, id, ownerID string) (*models.File, error) {
	for _, f := range r.files {
		if f.ID == id && f.OwnerID == ownerID {
			clone := *f
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
}

func (r *fakeFileRepo) Delete(ctx context.Context, id, ownerID string) error {
	for i, f := range r.files {
		if f.ID == id && f.OwnerID == ownerID {
			r.files = append(r.files[:i], r.files[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
}

func (r *fakeFileRepo) ListInFolder(ctx context.Context, ownerID string, folderID *string) ([]models.File, error) {
	var out []models.File
	for i := len(r.files) - 1; i >= 0; i-- {
		f := r.files[i]
		if f.OwnerID != ownerID || !sameRef(f.FolderID, folderID) {
			continue
		}
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeFileRepo) SetResourceType(ctx context.Context, id string, kind models.ResourceKind) error {
	for _, f := range r.files {
		if f.ID == id {
			f.ResourceType = kind
			return nil
		}
	}
	return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
}

type fakeUserRepo struct {
	users  []*models.User
	nextID int
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return &domain.ConflictError{
				Message:      "an account with that email already exists",
				ResourceType: "user",
				ResourceID:   u.ID,
			}
		}
	}
	r.nextID++
	user.ID = "user-" + strconv.Itoa(r.nextID)
	user.CreatedAt = time.Now()
	clone := *user
	r.users = append(r.users, &clone)
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

// fakeBlobStore scripts upload, probe and destroy behavior
type fakeBlobStore struct {
	uploadResult *services.UploadResult
	uploadErr    error
	detected     models.ResourceKind
	removeErr    error
	removed      []string // "publicID/kind" of every destroy attempt
	resolved     []string // publicIDs that went through detection
}

func (b *fakeBlobStore) Upload(ctx context.Context, r io.Reader, ownerID string) (*services.UploadResult, error) {
	if b.uploadErr != nil {
		return nil, b.uploadErr
	}
	if b.uploadResult != nil {
		clone := *b.uploadResult
		return &clone, nil
	}
	return &services.UploadResult{
		PublicID:     "drive_" + ownerID + "/blob",
		SecureURL:    "https://store.example/drive_" + ownerID + "/blob",
		ResourceType: models.KindRaw,
		Version:      1,
	}, nil
}

func (b *fakeBlobStore) ResolveResourceType(ctx context.Context, publicID string) models.ResourceKind {
	b.resolved = append(b.resolved, publicID)
	if b.detected == "" {
		return models.KindImage
	}
	return b.detected
}

func (b *fakeBlobStore) SignedURL(publicID string, kind models.ResourceKind) (string, error) {
	return "https://store.example/signed/" + string(kind) + "/" + publicID, nil
}

func (b *fakeBlobStore) Remove(ctx context.Context, publicID string, kind models.ResourceKind) error {
	b.removed = append(b.removed, publicID+"/"+string(kind))
	return b.removeErr
}

func sameRef(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func strPtr(s string) *string { return &s }
