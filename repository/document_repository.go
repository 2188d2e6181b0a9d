package repository

import (
	"context"
	"fmt"

	"legalclarify-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MaxHistory is the largest history page ListHistory returns
const MaxHistory = 10

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

const documentColumns = `id, user_id, file_id, name, document_type, mime_type, size,
			content, checksum, language, analysis, upload_date, created_at, updated_at`

func scanDocument(row interface{ Scan(...any) error }) (*models.Document, error) {
	doc := &models.Document{}
	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.FileID,
		&doc.Name,
		&doc.DocumentType,
		&doc.MimeType,
		&doc.Size,
		&doc.Content,
		&doc.Checksum,
		&doc.Language,
		&doc.Analysis,
		&doc.UploadDate,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return doc, nil
}

// Create creates a new document
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (
			user_id, file_id, name, document_type, mime_type, size,
			content, checksum, language, analysis
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, upload_date, created_at, updated_at`

	return r.db.QueryRow(
		ctx, query,
		doc.UserID,
		doc.FileID,
		doc.Name,
		doc.DocumentType,
		doc.MimeType,
		doc.Size,
		doc.Content,
		doc.Checksum,
		doc.Language,
		doc.Analysis,
	).Scan(&doc.ID, &doc.UploadDate, &doc.CreatedAt, &doc.UpdatedAt)
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRow(ctx, query, id))
}

// UpdateAnalysis stores a completed analysis
func (r *DocumentRepository) UpdateAnalysis(ctx context.Context, id uuid.UUID, analysis *models.DocumentAnalysis) error {
	query := `
		UPDATE documents SET
			analysis = $2,
			updated_at = NOW()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, analysis)
	if err != nil {
		return fmt.Errorf("failed to update analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListHistory returns the newest documents, at most MaxHistory.
// A nil userID lists anonymous uploads.
func (r *DocumentRepository) ListHistory(ctx context.Context, userID *uuid.UUID, limit int) ([]*models.Document, error) {
	if limit <= 0 || limit > MaxHistory {
		limit = MaxHistory
	}

	query := `SELECT ` + documentColumns + `
		FROM documents
		WHERE user_id IS NOT DISTINCT FROM $1
		ORDER BY upload_date DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]*models.Document, 0, limit)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// Delete deletes a document; jobs and chat messages cascade
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
