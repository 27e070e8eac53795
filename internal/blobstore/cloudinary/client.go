// Package cloudinary adapts the Cloudinary SDK to the BlobStore capability
// the file layer depends on.
package cloudinary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"drivebox/internal/blobstore"
	"drivebox/internal/domain"
	"drivebox/internal/domain/models"
	"drivebox/internal/domain/services"
)

// Store implements services.BlobStore against Cloudinary
type Store struct {
	cld          *cloudinary.Cloudinary
	probeTimeout time.Duration
	logger       *slog.Logger
}

// New creates a Cloudinary-backed blob store from a CLOUDINARY_URL-style URL
func New(cloudinaryURL string, probeTimeout time.Duration, logger *slog.Logger) (services.BlobStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	return &Store{
		cld:          cld,
		probeTimeout: probeTimeout,
		logger:       logger,
	}, nil
}

// Upload stores the blob in a per-owner folder, letting Cloudinary classify
// the content (resource_type auto)
func (s *Store) Upload(ctx context.Context, r io.Reader, ownerID string) (*services.UploadResult, error) {
	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       fmt.Sprintf("drive_%s", ownerID),
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("upload blob: %w: %w", domain.ErrUpstream, err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("upload blob: %w: %s", domain.ErrUpstream, resp.Error.Message)
	}

	return &services.UploadResult{
		PublicID:     resp.PublicID,
		SecureURL:    resp.SecureURL,
		ResourceType: models.ResourceKind(resp.ResourceType),
		Size:         int64(resp.Bytes),
		Version:      resp.Version,
	}, nil
}

// ResolveResourceType probes the Admin API through the fixed detection chain
func (s *Store) ResolveResourceType(ctx context.Context, publicID string) models.ResourceKind {
	kind := blobstore.DetectKind(ctx, publicID, s.probeAsset, s.probeTimeout)
	s.logger.Debug("resource kind resolved", "public_id", publicID, "kind", kind)
	return kind
}

// probeAsset asks the Admin API for blob metadata under one candidate kind
func (s *Store) probeAsset(ctx context.Context, publicID string, kind models.ResourceKind) error {
	res, err := s.cld.Admin.Asset(ctx, admin.AssetParams{
		PublicID:  publicID,
		AssetType: api.AssetType(kind),
	})
	if err != nil {
		return err
	}
	if res.Error.Message != "" {
		return fmt.Errorf("asset probe: %s", res.Error.Message)
	}
	return nil
}

// SignedURL builds a signed delivery URL for the blob. Never returns an
// unsigned URL when a locator is present.
func (s *Store) SignedURL(publicID string, kind models.ResourceKind) (string, error) {
	a, err := s.cld.Media(publicID)
	if err != nil {
		return "", fmt.Errorf("build delivery url: %w: %w", domain.ErrUpstream, err)
	}
	a.AssetType = api.AssetType(kind)
	a.Config.URL.SignURL = true

	url, err := a.String()
	if err != nil {
		return "", fmt.Errorf("sign delivery url: %w: %w", domain.ErrUpstream, err)
	}
	return url, nil
}

// Remove destroys the remote blob under its stored kind. Never pass "auto"
// to destroy; Cloudinary rejects it.
func (s *Store) Remove(ctx context.Context, publicID string, kind models.ResourceKind) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: string(kind),
	})
	if err != nil {
		return fmt.Errorf("destroy blob: %w: %w", domain.ErrUpstream, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("destroy blob: %w: %s", domain.ErrUpstream, res.Error.Message)
	}
	return nil
}
