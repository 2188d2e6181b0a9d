package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"legalclarify-backend/models"
	"legalclarify-backend/repository"
	"legalclarify-backend/sections"

	"github.com/google/uuid"
)

// Analysis step names, in processing order
const (
	StepReadingDocument  = "Reading Document"
	StepIdentifyingRisks = "Identifying Risky Clauses"
	StepCrossReferencing = "Cross-referencing Legal Sections"
	StepPreparingSummary = "Preparing Summary"
)

var analysisStepNames = []string{
	StepReadingDocument,
	StepIdentifyingRisks,
	StepCrossReferencing,
	StepPreparingSummary,
}

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrJobCreationFailed = errors.New("failed to create analysis job")
	ErrJobNotFound       = errors.New("analysis job not found")
	ErrAnalysisPending   = errors.New("document analysis not completed")
)

// AnalysisService runs document analyses as background jobs
type AnalysisService struct {
	docRepo  DocumentRepository
	jobRepo  AnalysisJobRepository
	analyzer Analyzer
	logger   *log.Logger
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// AnalysisWithDocumentRepository sets the document repository
func AnalysisWithDocumentRepository(repo DocumentRepository) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.docRepo = repo
	}
}

// AnalysisWithJobRepository sets the analysis job repository
func AnalysisWithJobRepository(repo AnalysisJobRepository) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.jobRepo = repo
	}
}

// AnalysisWithAnalyzer sets the analyzer
func AnalysisWithAnalyzer(analyzer Analyzer) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.analyzer = analyzer
	}
}

// AnalysisWithLogger sets the logger
func AnalysisWithLogger(l *log.Logger) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.logger = l
	}
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.analyzer == nil {
		s.analyzer = NewMockAnalyzer(0)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// StartAnalysisRequest represents a request to analyze a document
type StartAnalysisRequest struct {
	DocumentID uuid.UUID
}

// StartAnalysisResult represents the result of creating an analysis job
type StartAnalysisResult struct {
	JobID uuid.UUID
}

// GetJobStatusRequest represents a request to get job status
type GetJobStatusRequest struct {
	JobID uuid.UUID
}

// GetJobStatusResult represents the result of getting job status
type GetJobStatusResult struct {
	Job *models.AnalysisJob
}

// StartAnalysis creates an analysis job and returns immediately.
// The caller runs ProcessAnalysis in the background.
func (s *AnalysisService) StartAnalysis(ctx context.Context, req StartAnalysisRequest) (*StartAnalysisResult, error) {
	if s.docRepo == nil {
		return nil, errors.New("document repository not set")
	}
	if s.jobRepo == nil {
		return nil, errors.New("analysis job repository not set")
	}

	if _, err := s.docRepo.GetByID(ctx, req.DocumentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	job := &models.AnalysisJob{
		DocumentID: req.DocumentID,
		Status:     models.JobStatusPending,
		Steps:      initializeSteps(),
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		s.logger.Printf("Error: creating analysis job for %s: %v", req.DocumentID, err)
		return nil, ErrJobCreationFailed
	}

	return &StartAnalysisResult{JobID: job.ID}, nil
}

// GetJobStatus retrieves the status of an analysis job
func (s *AnalysisService) GetJobStatus(ctx context.Context, req GetJobStatusRequest) (*GetJobStatusResult, error) {
	if s.jobRepo == nil {
		return nil, errors.New("analysis job repository not set")
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load analysis job: %w", err)
	}

	return &GetJobStatusResult{Job: job}, nil
}

// LatestJob returns the most recent analysis job of a document
func (s *AnalysisService) LatestJob(ctx context.Context, documentID uuid.UUID) (*models.AnalysisJob, error) {
	if s.jobRepo == nil {
		return nil, errors.New("analysis job repository not set")
	}
	job, err := s.jobRepo.GetLatestByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func initializeSteps() models.AnalysisSteps {
	steps := make(models.AnalysisSteps, 0, len(analysisStepNames))
	for _, name := range analysisStepNames {
		steps = append(steps, models.AnalysisStep{Name: name, Status: models.StepPending})
	}
	return steps
}

// ProcessAnalysis performs the analysis work. It runs in a goroutine; failures
// are recorded on the job and returned for logging.
func (s *AnalysisService) ProcessAnalysis(ctx context.Context, jobID uuid.UUID) error {
	if s.jobRepo == nil {
		return errors.New("analysis job repository not set")
	}
	if s.docRepo == nil {
		return errors.New("document repository not set")
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load analysis job: %w", err)
	}

	if err := s.jobRepo.UpdateStatus(ctx, jobID, models.JobStatusInProgress); err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	// 1. Reading Document
	if err := s.updateStepStatus(ctx, jobID, StepReadingDocument, models.StepInProgress, ""); err != nil {
		return s.fail(ctx, jobID, "failed to update step", err)
	}
	doc, err := s.docRepo.GetByID(ctx, job.DocumentID)
	if err != nil {
		return s.fail(ctx, jobID, "failed to load document", err)
	}
	readNote := fmt.Sprintf("%d characters read", len([]rune(doc.Content)))
	if doc.Content == "" {
		readNote = "No text could be extracted; analysing by document type"
	}
	if err := s.updateStepStatus(ctx, jobID, StepReadingDocument, models.StepCompleted, readNote); err != nil {
		return s.fail(ctx, jobID, "failed to update step", err)
	}

	// 2. Identifying Risky Clauses
	if err := s.updateStepStatus(ctx, jobID, StepIdentifyingRisks, models.StepInProgress, ""); err != nil {
		return s.fail(ctx, jobID, "failed to update step", err)
	}
	analysis, err := s.analyzer.Analyze(ctx, AnalyzeInput{
		DocumentID:   doc.ID,
		Name:         doc.Name,
		DocumentType: doc.DocumentType,
		Content:      doc.Content,
		Language:     doc.Language,
	})
	if err != nil {
		return s.fail(ctx, jobID, "failed to analyze document", err)
	}
	riskNote := fmt.Sprintf("%d risky clauses, overall risk %s", len(analysis.RiskyClauses), analysis.RiskLevel)
	if err := s.updateStepStatus(ctx, jobID, StepIdentifyingRisks, models.StepCompleted, riskNote); err != nil {
		return s.fail(ctx, jobID, "failed to update step", err)
	}

	// 3. Cross-referencing Legal Sections
	if err := s.updateStepStatus(ctx, jobID, StepCrossReferencing, models.StepInProgress, ""); err != nil {
		return s.fail(ctx, jobID, "failed to update step", err)
	}
	advised := sections.AdviseSections(doc.DocumentType, analysis.RiskLevel)
	sectionNote := fmt.Sprintf("%d sections referenced", len(advised))
	if err := s.updateStepStatus(ctx, jobID, StepCrossReferencing, models.StepCompleted, sectionNote); err != nil {
		return s.fail(ctx, jobID, "failed to update step", err)
	}

	// 4. Preparing Summary
	if err := s.updateStepStatus(ctx, jobID, StepPreparingSummary, models.StepInProgress, ""); err != nil {
		return s.fail(ctx, jobID, "failed to update step", err)
	}
	if err := analysis.Validate(); err != nil {
		return s.fail(ctx, jobID, "analyzer returned an invalid analysis", err)
	}
	if err := s.docRepo.UpdateAnalysis(ctx, doc.ID, analysis); err != nil {
		return s.fail(ctx, jobID, "failed to store analysis", err)
	}
	if err := s.updateStepStatus(ctx, jobID, StepPreparingSummary, models.StepCompleted, ""); err != nil {
		return s.fail(ctx, jobID, "failed to update step", err)
	}

	if err := s.jobRepo.Complete(ctx, jobID); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}
	return nil
}

// updateStepStatus updates the status of a specific step in the analysis job
func (s *AnalysisService) updateStepStatus(ctx context.Context, jobID uuid.UUID, stepName string, status models.StepStatus, description string) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	var currentStep string
	if job.CurrentStep != nil {
		currentStep = *job.CurrentStep
	}

	if step := job.Steps.Step(stepName); step != nil {
		step.Status = status
		if description != "" {
			step.Description = description
		}
		if status == models.StepInProgress {
			currentStep = stepName
		}
	}

	return s.jobRepo.UpdateProgress(ctx, jobID, currentStep, job.Steps)
}

// fail marks the running step and the job as failed and returns the wrapped cause
func (s *AnalysisService) fail(ctx context.Context, jobID uuid.UUID, msg string, cause error) error {
	err := fmt.Errorf("%s: %w", msg, cause)

	// Record against a fresh context so a cancelled run still leaves a trace
	recordCtx := context.WithoutCancel(ctx)
	if job, getErr := s.jobRepo.GetByID(recordCtx, jobID); getErr == nil && job.CurrentStep != nil {
		if step := job.Steps.Step(*job.CurrentStep); step != nil && step.Status == models.StepInProgress {
			step.Status = models.StepFailed
			if updErr := s.jobRepo.UpdateProgress(recordCtx, jobID, *job.CurrentStep, job.Steps); updErr != nil {
				s.logger.Printf("Warning: failed to mark step failed for job %s: %v", jobID, updErr)
			}
		}
	}
	if failErr := s.jobRepo.Fail(recordCtx, jobID, err.Error()); failErr != nil {
		s.logger.Printf("Warning: failed to mark job %s failed: %v", jobID, failErr)
	}
	return err
}
