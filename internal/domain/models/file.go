package models

import "time"

// ResourceKind is the object store's content-category classification.
// It governs how delivery URLs are built and how blobs are destroyed.
type ResourceKind string

const (
	KindImage ResourceKind = "image"
	KindVideo ResourceKind = "video"
	KindRaw   ResourceKind = "raw"
)

// File is the metadata record for one stored blob. PublicID is the opaque
// object-store locator, assigned once at upload time and never rewritten.
// ResourceType may be empty for records imported from an inconsistent state;
// it is resolved lazily by probing and persisted back on first use.
type File struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	URL          string       `json:"url"` // upload-time secure URL; display/fallback only
	FolderID     *string      `json:"folder"`
	OwnerID      string       `json:"owner"`
	Size         int64        `json:"size"`
	MimeType     string       `json:"mime_type"`
	PublicID     string       `json:"-"`
	ResourceType ResourceKind `json:"resource_type,omitempty"`
	Version      int          `json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
}
