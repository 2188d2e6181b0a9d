package service

import (
	"context"

	"legalclarify-backend/models"

	"github.com/google/uuid"
)

// The interfaces below are satisfied by the pgx repositories in package
// repository and by in-memory stubs in tests.

// DocumentRepository persists documents and their analyses
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	UpdateAnalysis(ctx context.Context, id uuid.UUID, analysis *models.DocumentAnalysis) error
	ListHistory(ctx context.Context, userID *uuid.UUID, limit int) ([]*models.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FileRepository persists stored file metadata
type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.File, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AnalysisJobRepository persists analysis job progress
type AnalysisJobRepository interface {
	Create(ctx context.Context, job *models.AnalysisJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AnalysisJob, error)
	GetLatestByDocumentID(ctx context.Context, documentID uuid.UUID) (*models.AnalysisJob, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.AnalysisJobStatus) error
	UpdateProgress(ctx context.Context, id uuid.UUID, currentStep string, steps models.AnalysisSteps) error
	Complete(ctx context.Context, id uuid.UUID) error
	Fail(ctx context.Context, id uuid.UUID, errorMessage string) error
}

// ChatRepository persists the per-document chat log
type ChatRepository interface {
	Append(ctx context.Context, msg *models.ChatMessage) error
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*models.ChatMessage, error)
}

// UserRepository persists users
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePreferredLanguage(ctx context.Context, id uuid.UUID, language string) error
}
