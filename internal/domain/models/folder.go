package models

import "time"

// Folder is a node in a per-owner forest. ParentID is fixed at creation;
// renaming never moves a folder, so the parent graph cannot form cycles.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  *string   `json:"parent"` // NULL = root level ("My Drive")
	OwnerID   string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BreadcrumbSegment is one step of the root-to-current navigation path.
// The synthetic root has a nil ID.
type BreadcrumbSegment struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// RootFolderName labels the synthetic root segment.
const RootFolderName = "My Drive"
