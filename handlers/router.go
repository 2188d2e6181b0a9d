package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler mounted by NewRouter. A nil User handler
// leaves the user routes unmounted.
type Handlers struct {
	Documents *DocumentHandler
	Files     *FileHandler
	Chat      *ChatHandler
	Reference *ReferenceHandler
	Users     *UserHandler
}

// NewRouter builds the gin engine with all API routes
func NewRouter(h Handlers, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware...)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		// Document endpoints
		api.POST("/documents", h.Documents.UploadDocument)
		api.GET("/documents", h.Documents.ListDocuments)
		api.GET("/documents/:id", h.Documents.GetDocument)
		api.DELETE("/documents/:id", h.Documents.DeleteDocument)
		api.GET("/documents/:id/file", h.Files.GetFile)
		api.GET("/documents/:id/report", h.Documents.GetReport)
		api.GET("/documents/:id/compare/:other", h.Documents.CompareDocuments)
		api.POST("/documents/:id/chat", h.Chat.Ask)
		api.GET("/documents/:id/chat", h.Chat.Session)

		// Job endpoints
		api.GET("/jobs/:id", h.Documents.GetJobStatus)

		// Stateless chat
		api.POST("/chat/respond", h.Chat.Respond)

		// Reference data
		api.GET("/sections", h.Reference.AdviseSections)
		api.GET("/sections/:section", h.Reference.GetSection)
		api.GET("/languages", h.Reference.ListLanguages)
		api.GET("/i18n/:lang", h.Reference.GetStrings)

		if h.Users != nil {
			api.POST("/users", h.Users.CreateUser)
			api.POST("/users/login", h.Users.Login)
			api.GET("/users/:id", h.Users.GetUser)
			api.PUT("/users/:id/language", h.Users.SetLanguage)
		}
	}

	return r
}
