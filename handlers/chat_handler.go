package handlers

import (
	"net/http"
	"strings"

	"legalclarify-backend/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles the canned-response chat endpoints
type ChatHandler struct {
	chat      *service.ChatService
	documents *service.DocumentService
	users     *service.UserService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *service.ChatService, documents *service.DocumentService, users *service.UserService) *ChatHandler {
	return &ChatHandler{chat: chat, documents: documents, users: users}
}

type chatRequest struct {
	Question string `json:"question" binding:"required"`
	Language string `json:"language"`
}

// Respond handles POST /api/chat/respond
func (h *ChatHandler) Respond(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		respondError(c, http.StatusBadRequest, "MISSING_QUESTION", "Question is required")
		return
	}

	lang := resolveLanguage(c, h.users, req.Language, nil)
	match := h.chat.Respond(req.Question, lang)
	respondOK(c, http.StatusOK, gin.H{
		"category": match.Category,
		"language": match.Language,
		"response": match.Text,
		"fallback": match.Fallback,
	})
}

// Ask handles POST /api/documents/:id/chat
func (h *ChatHandler) Ask(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_QUESTION", "Question is required")
		return
	}

	// Answers follow the document owner's preference like the session greeting
	doc, err := h.documents.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	lang := resolveLanguage(c, h.users, req.Language, doc.UserID)
	result, err := h.chat.Ask(c.Request.Context(), service.AskRequest{
		DocumentID: id,
		Question:   req.Question,
		Language:   lang,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"category": result.Match.Category,
		"language": result.Match.Language,
		"response": result.Match.Text,
		"fallback": result.Match.Fallback,
		"message":  result.Answer,
	})
}

// Session handles GET /api/documents/:id/chat
func (h *ChatHandler) Session(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}

	doc, err := h.documents.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	history, err := h.chat.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}

	lang := resolveLanguage(c, h.users, c.Query("lang"), doc.UserID)
	respondOK(c, http.StatusOK, gin.H{
		"greeting":            h.chat.Greeting(doc.Name, lang),
		"suggested_questions": h.chat.SuggestedQuestions(lang),
		"history":             history,
		"language":            lang,
	})
}
