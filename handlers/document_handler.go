package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"legalclarify-backend/i18n"
	"legalclarify-backend/models"
	"legalclarify-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for documents and their analysis jobs
type DocumentHandler struct {
	documents *service.DocumentService
	analysis  *service.AnalysisService
	users     *service.UserService
}

// NewDocumentHandler creates a new document handler. users may be nil; the
// display language then comes from the request alone.
func NewDocumentHandler(documents *service.DocumentService, analysis *service.AnalysisService, users *service.UserService) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
		analysis:  analysis,
		users:     users,
	}
}

// UploadDocument handles POST /api/documents
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	userID, ok := optionalUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "File is required")
		return
	}

	maxBytes := h.documents.MaxUploadBytes()
	if fileHeader.Size > maxBytes {
		respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE", fmt.Sprintf("File size exceeds maximum of %d bytes", maxBytes))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FILE_OPEN_ERROR", err.Error())
		return
	}
	defer file.Close()

	lang := resolveLanguage(c, h.users, c.PostForm("language"), userID)

	result, err := h.documents.Upload(c.Request.Context(), service.UploadRequest{
		UserID:   userID,
		Filename: fileHeader.Filename,
		Language: lang,
		Data:     file,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	job, err := h.analysis.StartAnalysis(c.Request.Context(), service.StartAnalysisRequest{DocumentID: result.Document.ID})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ANALYSIS_FAILED", err.Error())
		return
	}

	// Use background context (not request context) to avoid cancellation
	go func() {
		bgCtx := context.Background()
		if err := h.analysis.ProcessAnalysis(bgCtx, job.JobID); err != nil {
			// Stored in job.ErrorMessage; clients poll the job
			log.Printf("Analysis job %s failed: %v", job.JobID, err)
		}
	}()

	doc := *result.Document
	doc.Content = ""
	respondOK(c, http.StatusCreated, gin.H{
		"document": doc,
		"job_id":   job.JobID,
		"status":   models.JobStatusPending,
		"message":  "Analysis started. Poll /api/jobs/:id for updates.",
	})
}

// ListDocuments handles GET /api/documents
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	userID, ok := optionalUserID(c)
	if !ok {
		return
	}

	docs, err := h.documents.History(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	out := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		doc := *d
		doc.Content = ""
		out = append(out, doc)
	}
	respondOK(c, http.StatusOK, out)
}

// GetDocument handles GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}

	doc, err := h.documents.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	data := gin.H{"document": doc}
	if job, err := h.analysis.LatestJob(c.Request.Context(), id); err == nil {
		data["job"] = job
	}
	respondOK(c, http.StatusOK, data)
}

// DeleteDocument handles DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}

	if err := h.documents.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

// GetReport handles GET /api/documents/:id/report
func (h *DocumentHandler) GetReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}

	userID, ok := optionalUserID(c)
	if !ok {
		return
	}
	if userID == nil {
		doc, err := h.documents.Get(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		userID = doc.UserID
	}
	lang := resolveLanguage(c, h.users, c.Query("lang"), userID)

	report, err := h.documents.Report(c.Request.Context(), id, lang)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, report)
}

// CompareDocuments handles GET /api/documents/:id/compare/:other
func (h *DocumentHandler) CompareDocuments(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}
	other, ok := parseIDParam(c, "other", "comparison document")
	if !ok {
		return
	}
	if id == other {
		respondError(c, http.StatusBadRequest, "SAME_DOCUMENT", "Choose two different documents to compare")
		return
	}

	cmp, err := h.documents.Compare(c.Request.Context(), id, other)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, cmp)
}

// GetJobStatus handles GET /api/jobs/:id
func (h *DocumentHandler) GetJobStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "job")
	if !ok {
		return
	}

	result, err := h.analysis.GetJobStatus(c.Request.Context(), service.GetJobStatusRequest{JobID: id})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result.Job)
}

// resolveLanguage picks the display language of a request
func resolveLanguage(c *gin.Context, users *service.UserService, requested string, userID *uuid.UUID) string {
	accept := c.GetHeader("Accept-Language")
	if users == nil {
		if lang, ok := i18n.Match(requested); ok {
			return lang
		}
		return i18n.FromAcceptLanguage(accept)
	}
	return users.ResolveLanguage(c.Request.Context(), requested, userID, accept)
}

// respondServiceError maps service sentinel errors onto HTTP responses
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDocumentNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Document not found")
	case errors.Is(err, service.ErrJobNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
	case errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, service.ErrFileNotStored):
		respondError(c, http.StatusNotFound, "FILE_NOT_FOUND", "Original file is not available")
	case errors.Is(err, service.ErrAnalysisPending):
		respondError(c, http.StatusConflict, "ANALYSIS_PENDING", "Document analysis has not completed yet")
	case errors.Is(err, service.ErrUnsupportedFileType):
		respondError(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "File type not allowed. Allowed types: PDF, TXT, DOC, DOCX")
	case errors.Is(err, service.ErrFileTooLarge):
		respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE", err.Error())
	case errors.Is(err, service.ErrEmptyFile):
		respondError(c, http.StatusBadRequest, "EMPTY_FILE", "File is empty")
	case errors.Is(err, service.ErrEmptyQuestion):
		respondError(c, http.StatusBadRequest, "MISSING_QUESTION", "Question is required")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(c, http.StatusConflict, "EMAIL_TAKEN", "Email is already registered")
	case errors.Is(err, service.ErrInvalidEmail):
		respondError(c, http.StatusBadRequest, "INVALID_EMAIL", "Invalid email address")
	case errors.Is(err, service.ErrPasswordTooShort):
		respondError(c, http.StatusBadRequest, "PASSWORD_TOO_SHORT", fmt.Sprintf("Password must be at least %d characters", service.MinPasswordLength))
	case errors.Is(err, service.ErrUnsupportedLanguage):
		respondError(c, http.StatusBadRequest, "UNSUPPORTED_LANGUAGE", "Supported languages: en, hi, ta, te")
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
