package handlers

import (
	"fmt"
	"mime"
	"net/http"

	"legalclarify-backend/service"

	"github.com/gin-gonic/gin"
)

// FileHandler serves the original bytes of uploaded documents
type FileHandler struct {
	documents *service.DocumentService
}

// NewFileHandler creates a new file handler
func NewFileHandler(documents *service.DocumentService) *FileHandler {
	return &FileHandler{documents: documents}
}

// GetFile handles GET /api/documents/:id/file
func (h *FileHandler) GetFile(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}

	file, reader, err := h.documents.OpenFile(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer reader.Close()

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename})
	if disposition == "" {
		disposition = fmt.Sprintf("attachment; filename=%q", "document")
	}
	c.DataFromReader(http.StatusOK, file.Size, file.MimeType, reader, map[string]string{
		"Content-Disposition": disposition,
	})
}
