package service

import (
	"context"
	"testing"

	"drivebox/internal/domain/models"
	"drivebox/internal/domain/services"
)

func newDriveFixture(t *testing.T) (services.DriveService, services.FolderService, services.FileService, *fakeFileRepo) {
	t.Helper()
	folderRepo := &fakeFolderRepo{}
	fileRepo := &fakeFileRepo{}
	blobs := &fakeBlobStore{}
	fileSvc := NewFileService(fileRepo, folderRepo, blobs, testLogger())
	folderSvc := NewFolderService(folderRepo, fileSvc, false, testLogger())
	driveSvc := NewDriveService(folderSvc, fileSvc, testLogger())
	return driveSvc, folderSvc, fileSvc, fileRepo
}

func TestBrowse_CombinesFoldersAndFiles(t *testing.T) {
	driveSvc, folderSvc, _, fileRepo := newDriveFixture(t)

	docs := mustCreateFolder(t, folderSvc, "u1", "Docs", nil)
	fileRepo.files = append(fileRepo.files, &models.File{
		ID: "file-1", Name: "report.pdf", OwnerID: "u1", FolderID: &docs.ID, Size: 1024,
	})

	listing, err := driveSvc.Browse(context.Background(), "u1", &docs.ID)
	if err != nil {
		t.Fatalf("Browse() failed: %v", err)
	}

	if len(listing.Folders) != 0 {
		t.Errorf("folders = %v, want empty", listing.Folders)
	}
	if len(listing.Files) != 1 || listing.Files[0].Name != "report.pdf" || listing.Files[0].Size != 1024 {
		t.Errorf("files = %v, want the uploaded report", listing.Files)
	}
	if listing.Files[0].FolderID == nil || *listing.Files[0].FolderID != docs.ID {
		t.Errorf("file folder = %v, want %q", listing.Files[0].FolderID, docs.ID)
	}
}

func TestBreadcrumbFor(t *testing.T) {
	driveSvc, folderSvc, _, _ := newDriveFixture(t)

	root, err := driveSvc.BreadcrumbFor(context.Background(), "u1", nil)
	if err != nil {
		t.Fatalf("BreadcrumbFor(nil) failed: %v", err)
	}
	if len(root) != 1 || root[0].ID != nil || root[0].Name != models.RootFolderName {
		t.Errorf("root breadcrumb = %v, want single synthetic root", root)
	}

	a := mustCreateFolder(t, folderSvc, "u1", "A", nil)
	b := mustCreateFolder(t, folderSvc, "u1", "B", &a.ID)

	crumb, err := driveSvc.BreadcrumbFor(context.Background(), "u1", &b.ID)
	if err != nil {
		t.Fatalf("BreadcrumbFor(b) failed: %v", err)
	}

	// Synthetic root first, then the chain: length is depth+2 for a depth-1 folder
	wantNames := []string{models.RootFolderName, "A", "B"}
	if len(crumb) != len(wantNames) {
		t.Fatalf("breadcrumb length = %d, want %d", len(crumb), len(wantNames))
	}
	for i, name := range wantNames {
		if crumb[i].Name != name {
			t.Errorf("crumb[%d].Name = %q, want %q", i, crumb[i].Name, name)
		}
	}
	if crumb[0].ID != nil {
		t.Errorf("synthetic root must carry a nil id")
	}
}

func TestDeleteFolder_FiltersClientView(t *testing.T) {
	driveSvc, folderSvc, _, fileRepo := newDriveFixture(t)

	docs := mustCreateFolder(t, folderSvc, "u1", "Docs", nil)
	keep := mustCreateFolder(t, folderSvc, "u1", "Keep", nil)
	fileRepo.files = append(fileRepo.files,
		&models.File{ID: "file-1", Name: "in-docs.pdf", OwnerID: "u1", FolderID: &docs.ID},
		&models.File{ID: "file-2", Name: "at-root.txt", OwnerID: "u1"},
	)

	view := &services.Listing{
		Folders: []models.Folder{*docs, *keep},
		Files: []models.File{
			{ID: "file-1", Name: "in-docs.pdf", FolderID: &docs.ID},
			{ID: "file-2", Name: "at-root.txt"},
		},
	}

	filtered, err := driveSvc.DeleteFolder(context.Background(), "u1", docs.ID, view)
	if err != nil {
		t.Fatalf("DeleteFolder() failed: %v", err)
	}

	if len(filtered.Folders) != 1 || filtered.Folders[0].ID != keep.ID {
		t.Errorf("view folders = %v, want only %q", filtered.Folders, keep.ID)
	}
	if len(filtered.Files) != 1 || filtered.Files[0].ID != "file-2" {
		t.Errorf("view files = %v, want only file-2", filtered.Files)
	}

	// The view filter is session-local: the persisted orphan is untouched
	persisted, _ := fileRepo.ListInFolder(context.Background(), "u1", &docs.ID)
	if len(persisted) != 1 {
		t.Errorf("persisted files under deleted folder = %d, want 1", len(persisted))
	}
}

func TestFilterListing(t *testing.T) {
	listing := &services.Listing{
		Folders: []models.Folder{
			{ID: "folder-1", Name: "Reports"},
			{ID: "folder-2", Name: "Photos"},
		},
		Files: []models.File{
			{ID: "file-1", Name: "report.pdf"},
			{ID: "file-2", Name: "Annual Report.docx"},
			{ID: "file-3", Name: "holiday.png"},
		},
	}

	tests := []struct {
		name        string
		query       string
		wantFolders int
		wantFiles   int
	}{
		{name: "empty query matches everything", query: "", wantFolders: 2, wantFiles: 3},
		{name: "case-insensitive substring", query: "report", wantFolders: 1, wantFiles: 2},
		{name: "uppercase query", query: "REPORT", wantFolders: 1, wantFiles: 2},
		{name: "no match", query: "zzz", wantFolders: 0, wantFiles: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterListing(listing, tt.query)
			if len(got.Folders) != tt.wantFolders {
				t.Errorf("folders = %d, want %d", len(got.Folders), tt.wantFolders)
			}
			if len(got.Files) != tt.wantFiles {
				t.Errorf("files = %d, want %d", len(got.Files), tt.wantFiles)
			}
		})
	}
}
