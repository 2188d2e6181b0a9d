package handlers

import (
	"net/http"

	"legalclarify-backend/i18n"
	"legalclarify-backend/sections"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the static section catalog and language tables
type ReferenceHandler struct{}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// AdviseSections handles GET /api/sections
func (h *ReferenceHandler) AdviseSections(c *gin.Context) {
	var req sections.AdviceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"sections":   sections.Advise(req),
		"disclaimer": sections.Disclaimer,
	})
}

// GetSection handles GET /api/sections/:section
func (h *ReferenceHandler) GetSection(c *gin.Context) {
	section, ok := sections.Lookup(c.Param("section"))
	if !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Section not found")
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"section":    section,
		"related":    sections.Related(section.Section),
		"disclaimer": sections.Disclaimer,
	})
}

// ListLanguages handles GET /api/languages
func (h *ReferenceHandler) ListLanguages(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{
		"languages": i18n.Languages(),
		"default":   i18n.Default,
	})
}

// GetStrings handles GET /api/i18n/:lang
func (h *ReferenceHandler) GetStrings(c *gin.Context) {
	lang, ok := i18n.Match(c.Param("lang"))
	if !ok {
		respondError(c, http.StatusNotFound, "UNSUPPORTED_LANGUAGE", "Supported languages: en, hi, ta, te")
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"language": i18n.Get(lang),
		"strings":  i18n.UIStrings.Bundle(lang),
	})
}
