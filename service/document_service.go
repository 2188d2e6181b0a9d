package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"legalclarify-backend/extract"
	"legalclarify-backend/i18n"
	"legalclarify-backend/models"
	"legalclarify-backend/repository"
	"legalclarify-backend/sections"
	"legalclarify-backend/storage"

	"github.com/google/uuid"
)

// DefaultMaxUploadBytes is the upload limit when none is configured
const DefaultMaxUploadBytes int64 = 10 << 20

// allowedExtensions lists the document formats accepted for upload
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".doc":  true,
	".docx": true,
}

var (
	ErrFileTooLarge        = errors.New("file exceeds the upload size limit")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyFile           = errors.New("file is empty")
	ErrFileNotStored       = errors.New("document has no stored file")
)

// DocumentService handles uploads, history, reports and comparisons
type DocumentService struct {
	docRepo  DocumentRepository
	fileRepo FileRepository
	storage  storage.Storage
	maxBytes int64
	logger   *log.Logger
}

// DocumentServiceOption is a functional option for DocumentService
type DocumentServiceOption func(*DocumentService)

// DocumentWithRepository sets the document repository
func DocumentWithRepository(repo DocumentRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.docRepo = repo
	}
}

// DocumentWithFileRepository sets the file repository
func DocumentWithFileRepository(repo FileRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.fileRepo = repo
	}
}

// DocumentWithStorage sets the storage backend
func DocumentWithStorage(store storage.Storage) DocumentServiceOption {
	return func(s *DocumentService) {
		s.storage = store
	}
}

// DocumentWithMaxUploadBytes sets the upload size limit
func DocumentWithMaxUploadBytes(n int64) DocumentServiceOption {
	return func(s *DocumentService) {
		if n > 0 {
			s.maxBytes = n
		}
	}
}

// DocumentWithLogger sets the logger
func DocumentWithLogger(l *log.Logger) DocumentServiceOption {
	return func(s *DocumentService) {
		s.logger = l
	}
}

// NewDocumentService creates a new document service
func NewDocumentService(opts ...DocumentServiceOption) *DocumentService {
	s := &DocumentService{maxBytes: DefaultMaxUploadBytes}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// MaxUploadBytes returns the configured upload limit
func (s *DocumentService) MaxUploadBytes() int64 {
	return s.maxBytes
}

// UploadRequest represents an uploaded document
type UploadRequest struct {
	UserID   *uuid.UUID
	Filename string
	Language string
	Data     io.Reader
}

// UploadResult represents the stored document
type UploadResult struct {
	Document *models.Document
	File     *models.File
}

// Upload validates, stores and records a document. Text extraction failures
// do not fail the upload; the document is kept with empty content.
func (s *DocumentService) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	if s.docRepo == nil || s.fileRepo == nil || s.storage == nil {
		return nil, errors.New("document service is not fully configured")
	}

	ext := strings.ToLower(filepath.Ext(req.Filename))
	if !allowedExtensions[ext] {
		return nil, ErrUnsupportedFileType
	}

	// Read one byte past the limit to detect oversized uploads
	data, err := io.ReadAll(io.LimitReader(req.Data, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	mimeType := storage.DetectContentType(req.Filename, data)
	checksum, err := storage.Checksum(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to checksum upload: %w", err)
	}

	fileID := uuid.New()
	storagePath, err := s.storage.Upload(ctx, fileID, req.Filename, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	file := &models.File{
		ID:          fileID,
		UserID:      req.UserID,
		Filename:    filepath.Base(req.Filename),
		MimeType:    mimeType,
		Size:        int64(len(data)),
		StoragePath: storagePath,
		Checksum:    checksum,
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		s.removeStored(ctx, storagePath)
		return nil, fmt.Errorf("failed to record file: %w", err)
	}

	content, err := extract.Text(ctx, req.Filename, mimeType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		s.logger.Printf("Warning: no text extracted from %s: %v", req.Filename, err)
		content = ""
	}

	doc := &models.Document{
		UserID:       req.UserID,
		FileID:       &file.ID,
		Name:         file.Filename,
		DocumentType: extract.DetectDocumentType(file.Filename, content),
		MimeType:     mimeType,
		Size:         file.Size,
		Content:      content,
		Checksum:     checksum,
		Language:     i18n.Normalize(req.Language),
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		if delErr := s.fileRepo.Delete(ctx, file.ID); delErr != nil {
			s.logger.Printf("Warning: failed to remove file record %s: %v", file.ID, delErr)
		}
		s.removeStored(ctx, storagePath)
		return nil, fmt.Errorf("failed to record document: %w", err)
	}

	return &UploadResult{Document: doc, File: file}, nil
}

func (s *DocumentService) removeStored(ctx context.Context, storagePath string) {
	if err := s.storage.Delete(context.WithoutCancel(ctx), storagePath); err != nil {
		s.logger.Printf("Warning: failed to remove stored file %s: %v", storagePath, err)
	}
}

// Get returns a document by ID
func (s *DocumentService) Get(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return doc, nil
}

// History returns the newest documents of a user, or of anonymous uploads
// when userID is nil
func (s *DocumentService) History(ctx context.Context, userID *uuid.UUID) ([]*models.Document, error) {
	docs, err := s.docRepo.ListHistory(ctx, userID, repository.MaxHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// Delete removes a document together with its stored file
func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.docRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if doc.FileID == nil || s.fileRepo == nil {
		return nil
	}
	file, err := s.fileRepo.GetByID(ctx, *doc.FileID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Printf("Warning: failed to load file %s of deleted document: %v", *doc.FileID, err)
		}
		return nil
	}
	if err := s.fileRepo.Delete(ctx, file.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logger.Printf("Warning: failed to delete file record %s: %v", file.ID, err)
	}
	if s.storage != nil {
		s.removeStored(ctx, file.StoragePath)
	}
	return nil
}

// OpenFile returns the original bytes of a document. The caller closes the reader.
func (s *DocumentService) OpenFile(ctx context.Context, id uuid.UUID) (*models.File, io.ReadCloser, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if doc.FileID == nil || s.fileRepo == nil || s.storage == nil {
		return nil, nil, ErrFileNotStored
	}

	file, err := s.fileRepo.GetByID(ctx, *doc.FileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrFileNotStored
		}
		return nil, nil, fmt.Errorf("failed to load file: %w", err)
	}

	rc, err := s.storage.Download(ctx, file.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrFileNotStored
		}
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, rc, nil
}

// Report is a localized view of a document's analysis
type Report struct {
	DocumentID   uuid.UUID                `json:"document_id"`
	Name         string                   `json:"name"`
	DocumentType string                   `json:"document_type"`
	Language     string                   `json:"language"`
	Headings     map[string]string        `json:"headings"`
	RiskIcon     string                   `json:"risk_icon"`
	RiskBadge    string                   `json:"risk_badge"`
	Analysis     *models.DocumentAnalysis `json:"analysis"`
	Sections     []models.LegalSection    `json:"sections"`
	Disclaimer   string                   `json:"disclaimer"`
}

var reportHeadings = []string{
	"risk_level",
	"document_summary",
	"key_points",
	"risky_clauses",
	"your_rights",
	"action_checklist",
	"narration_intro",
}

// Report builds the localized report of an analyzed document
func (s *DocumentService) Report(ctx context.Context, id uuid.UUID, lang string) (*Report, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !doc.Analyzed() {
		return nil, ErrAnalysisPending
	}

	lang = i18n.Normalize(lang)
	headings := make(map[string]string, len(reportHeadings))
	for _, key := range reportHeadings {
		headings[key] = i18n.T(key, lang)
	}

	return &Report{
		DocumentID:   doc.ID,
		Name:         doc.Name,
		DocumentType: doc.DocumentType,
		Language:     lang,
		Headings:     headings,
		RiskIcon:     doc.Analysis.RiskLevel.Icon(),
		RiskBadge:    doc.Analysis.RiskLevel.Badge(),
		Analysis:     doc.Analysis,
		Sections:     sections.AdviseSections(doc.DocumentType, doc.Analysis.RiskLevel),
		Disclaimer:   sections.Disclaimer,
	}, nil
}

// Comparison is the side-by-side result of comparing two documents
type Comparison struct {
	Primary        *models.Document `json:"primary"`
	Other          *models.Document `json:"comparison"`
	Differences    []Difference     `json:"differences"`
	Verdict        Verdict          `json:"verdict"`
	Recommendation string           `json:"recommendation"`
}

// Compare compares the contract terms of two analyzed documents
func (s *DocumentService) Compare(ctx context.Context, primaryID, otherID uuid.UUID) (*Comparison, error) {
	primary, err := s.Get(ctx, primaryID)
	if err != nil {
		return nil, err
	}
	other, err := s.Get(ctx, otherID)
	if err != nil {
		return nil, err
	}
	if !primary.Analyzed() || !other.Analyzed() {
		return nil, ErrAnalysisPending
	}

	diffs := CompareTerms(primary.Analysis.Terms, other.Analysis.Terms)
	verdict, recommendation := Summarize(diffs)

	// Content is large and not needed by comparison views
	primary.Content, other.Content = "", ""
	return &Comparison{
		Primary:        primary,
		Other:          other,
		Differences:    diffs,
		Verdict:        verdict,
		Recommendation: recommendation,
	}, nil
}
