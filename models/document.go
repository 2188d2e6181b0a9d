package models

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded legal document and its analysis
type Document struct {
	ID           uuid.UUID         `json:"id"`
	UserID       *uuid.UUID        `json:"user_id,omitempty"`
	FileID       *uuid.UUID        `json:"file_id,omitempty"`
	Name         string            `json:"name"`
	DocumentType string            `json:"document_type"`
	MimeType     string            `json:"mime_type"`
	Size         int64             `json:"size"`
	Content      string            `json:"content,omitempty"`
	Checksum     string            `json:"checksum"`
	Language     string            `json:"language"`
	Analysis     *DocumentAnalysis `json:"analysis,omitempty"`
	UploadDate   time.Time         `json:"upload_date"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Analyzed reports whether the document has a completed analysis
func (d *Document) Analyzed() bool {
	return d.Analysis != nil && d.Analysis.RiskLevel != ""
}
