package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"drivebox/internal/domain"
	"drivebox/internal/domain/models"
	"drivebox/internal/domain/services"
	"drivebox/internal/httputil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubFolderService records the arguments it was called with
type stubFolderService struct {
	lastOwner  string
	lastParent *string
	folders    []models.Folder
	err        error
}

func (s *stubFolderService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Folder{ID: "folder-1", Name: req.Name, ParentID: req.ParentID, OwnerID: req.OwnerID}, nil
}

func (s *stubFolderService) GetFolder(ctx context.Context, ownerID, id string) (*models.Folder, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Folder{ID: id, Name: "Docs", OwnerID: ownerID}, nil
}

func (s *stubFolderService) RenameFolder(ctx context.Context, ownerID, id, name string) (*models.Folder, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Folder{ID: id, Name: name, OwnerID: ownerID}, nil
}

func (s *stubFolderService) DeleteFolder(ctx context.Context, ownerID, id string) error {
	return s.err
}

func (s *stubFolderService) ListChildren(ctx context.Context, ownerID string, parentID *string) ([]models.Folder, error) {
	s.lastOwner = ownerID
	s.lastParent = parentID
	return s.folders, s.err
}

func (s *stubFolderService) AncestorChain(ctx context.Context, ownerID, id string) ([]models.BreadcrumbSegment, error) {
	if s.err != nil {
		return nil, s.err
	}
	fid := id
	return []models.BreadcrumbSegment{{ID: &fid, Name: "Docs"}}, nil
}

func asUser(req *http.Request, userID string) *http.Request {
	return httputil.WithUserID(req, userID)
}

func TestListFolders_ParentParam(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantParent *string
	}{
		{name: "absent means root", query: ""},
		{name: "literal null means root", query: "?parent=null"},
		{name: "id is passed through", query: "?parent=abc123", wantParent: func() *string { s := "abc123"; return &s }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubFolderService{folders: []models.Folder{}}
			h := NewFolderHandler(stub, testLogger())

			req := asUser(httptest.NewRequest(http.MethodGet, "/api/folders"+tt.query, nil), "u1")
			rec := httptest.NewRecorder()
			h.ListFolders(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			if stub.lastOwner != "u1" {
				t.Errorf("owner = %q, want u1", stub.lastOwner)
			}
			if tt.wantParent == nil {
				if stub.lastParent != nil {
					t.Errorf("parent = %v, want nil", *stub.lastParent)
				}
			} else if stub.lastParent == nil || *stub.lastParent != *tt.wantParent {
				t.Errorf("parent = %v, want %q", stub.lastParent, *tt.wantParent)
			}
		})
	}
}

func TestCreateFolder_Created(t *testing.T) {
	h := NewFolderHandler(&stubFolderService{}, testLogger())

	body := strings.NewReader(`{"name":"Docs","parent":null}`)
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/folders", body), "u1")
	rec := httptest.NewRecorder()
	h.CreateFolder(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp struct {
		Folder models.Folder `json:"folder"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Folder.Name != "Docs" || resp.Folder.OwnerID != "u1" {
		t.Errorf("folder = %+v", resp.Folder)
	}
}

func TestFolderHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: &domain.NotFoundError{Message: "folder x: not found"}, wantStatus: http.StatusNotFound},
		{name: "validation", err: &domain.ValidationError{Message: "folder name cannot be empty"}, wantStatus: http.StatusBadRequest},
		{name: "invalid parent", err: &domain.InvalidParentError{Message: "parent folder does not exist"}, wantStatus: http.StatusBadRequest},
		{name: "persistence failure hides detail", err: &domain.PersistenceError{Message: "mongo exploded"}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewFolderHandler(&stubFolderService{err: tt.err}, testLogger())

			req := asUser(httptest.NewRequest(http.MethodGet, "/api/folders", nil), "u1")
			rec := httptest.NewRecorder()
			h.ListFolders(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("content type = %q, want problem+json", ct)
			}

			var problem httputil.ProblemDetail
			if err := json.NewDecoder(rec.Body).Decode(&problem); err != nil {
				t.Fatalf("decode problem: %v", err)
			}
			if problem.Status != tt.wantStatus {
				t.Errorf("problem status = %d, want %d", problem.Status, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusInternalServerError && strings.Contains(problem.Detail, "mongo") {
				t.Errorf("internal detail leaked to client: %q", problem.Detail)
			}
		})
	}
}
