package main

import (
	"context"
	"log"
	"time"

	"legalclarify-backend/config"
	"legalclarify-backend/handlers"
	"legalclarify-backend/repository"
	"legalclarify-backend/repository/memory"
	"legalclarify-backend/sections"
	"legalclarify-backend/service"
	"legalclarify-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/api/option"
)

// repositories is the set of tables the services need, backed by either
// Postgres or the in-memory store
type repositories struct {
	documents service.DocumentRepository
	files     service.FileRepository
	jobs      service.AnalysisJobRepository
	chat      service.ChatRepository
	users     service.UserRepository
}

func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	repos, closeDB, err := initRepositories(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}
	defer closeDB()

	// Initialize storage
	fileStorage, err := storage.NewStorageFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Printf("Storage initialized (%s)", cfg.StorageType)

	for id, missing := range sections.DanglingReferences() {
		log.Printf("Warning: section %s references unknown sections %v", id, missing)
	}

	analyzer, closeAnalyzer := initAnalyzer(cfg)
	defer closeAnalyzer()

	// Initialize services
	documentService := service.NewDocumentService(
		service.DocumentWithRepository(repos.documents),
		service.DocumentWithFileRepository(repos.files),
		service.DocumentWithStorage(fileStorage),
		service.DocumentWithMaxUploadBytes(cfg.MaxUploadBytes),
	)
	analysisService := service.NewAnalysisService(
		service.AnalysisWithDocumentRepository(repos.documents),
		service.AnalysisWithJobRepository(repos.jobs),
		service.AnalysisWithAnalyzer(analyzer),
	)
	chatService := service.NewChatService(
		service.ChatWithDocumentRepository(repos.documents),
		service.ChatWithRepository(repos.chat),
	)
	userService := service.NewUserService(
		service.UserWithRepository(repos.users),
		service.UserWithDefaultLanguage(cfg.DefaultLanguage),
	)

	// Initialize handlers
	r := handlers.NewRouter(handlers.Handlers{
		Documents: handlers.NewDocumentHandler(documentService, analysisService, userService),
		Files:     handlers.NewFileHandler(documentService),
		Chat:      handlers.NewChatHandler(chatService, documentService, userService),
		Reference: handlers.NewReferenceHandler(),
		Users:     handlers.NewUserHandler(userService),
	}, gin.Logger(), gin.Recovery())

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initRepositories(cfg config.Config) (repositories, func(), error) {
	if cfg.Store == "memory" {
		log.Println("Warning: STORE=memory, data is lost on restart")
		store := memory.NewStore()
		return repositories{
			documents: store.Documents(),
			files:     store.Files(),
			jobs:      store.Jobs(),
			chat:      store.Chat(),
			users:     store.Users(),
		}, func() {}, nil
	}

	db, err := initPostgres(cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	return repositories{
		documents: repository.NewDocumentRepository(db),
		files:     repository.NewFileRepository(db),
		jobs:      repository.NewAnalysisJobRepository(db),
		chat:      repository.NewChatRepository(db),
		users:     repository.NewUserRepository(db),
	}, db.Close, nil
}

func initPostgres(cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}

	log.Println("Postgres connection established")
	return pool, nil
}

// initAnalyzer returns the configured analyzer. A Gemini setup without an API
// key degrades to the mock.
func initAnalyzer(cfg config.Config) (service.Analyzer, func()) {
	mock := service.NewMockAnalyzer(cfg.AnalysisDelay)
	if cfg.Analyzer != "gemini" {
		log.Printf("Using mock analyzer (delay %s)", cfg.AnalysisDelay)
		return mock, func() {}
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, using mock analyzer")
		return mock, func() {}
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		log.Printf("Warning: Failed to initialize Gemini, using mock analyzer: %v", err)
		return mock, func() {}
	}

	log.Printf("Gemini client initialized (%s)", cfg.GeminiModel)
	analyzer := service.NewGeminiAnalyzer(
		service.GeminiWithClient(client, cfg.GeminiModel),
		service.GeminiWithFallback(mock),
	)
	return analyzer, func() {
		if err := client.Close(); err != nil {
			log.Printf("Warning: Failed to close Gemini client: %v", err)
		}
	}
}
