package models

import (
	"time"

	"github.com/google/uuid"
)

// File represents an uploaded file stored in the storage backend
type File struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Filename    string     `json:"filename"`
	MimeType    string     `json:"mime_type"`
	Size        int64      `json:"size"`
	StoragePath string     `json:"storage_path"`
	Checksum    string     `json:"checksum"`
	CreatedAt   time.Time  `json:"created_at"`
}
