package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"meetingnotes-backend/internal/auth"
	"meetingnotes-backend/internal/documents"
	"meetingnotes-backend/internal/llm"
	"meetingnotes-backend/internal/llm/gemini"
	"meetingnotes-backend/internal/mailer"
	"meetingnotes-backend/internal/shared/config"
	"meetingnotes-backend/internal/shared/server"
	"meetingnotes-backend/internal/shared/storage/db"
	"meetingnotes-backend/internal/shared/storage/object"
	localstore "meetingnotes-backend/internal/shared/storage/object/local"
	s3store "meetingnotes-backend/internal/shared/storage/object/s3"
	"meetingnotes-backend/internal/summarize"
)

// App holds shared dependencies for the running service.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	LLM              llm.Client
	DocumentsRepo    documents.Repo
	DocumentsService *documents.Service
	SummarizeService *summarize.Service
	MailService      *mailer.Service
	DocumentsHandler *documents.Handler
	SummarizeHandler *summarize.Handler
	MailHandler      *mailer.Handler
	GoogleAuth       *auth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		LLM:    llmClient,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		DocumentsHandler: app.DocumentsHandler,
		SummarizeHandler: app.SummarizeHandler,
		MailHandler:      app.MailHandler,
		GoogleAuth:       app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	}
	return localstore.New(cfg.LocalStoreDir), nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: GEMINI_API_KEY empty; summarization disabled")
			return llm.PlaceholderClient{}, nil
		}
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	return gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
}

func buildServices(app *App) {
	cfg := app.Config

	if app.DB != nil {
		app.DocumentsRepo = &documents.PGRepo{DB: app.DB}
	} else {
		app.DocumentsRepo = documents.NewMemoryRepo()
	}

	app.DocumentsService = &documents.Service{
		Store:         app.Store,
		StoreProvider: cfg.ObjectStoreType,
		Repo:          app.DocumentsRepo,
	}
	app.DocumentsHandler = documents.NewHandler(app.DocumentsService)

	app.SummarizeService = &summarize.Service{
		Engine: summarize.NewEngine(app.LLM),
		Docs:   app.DocumentsService,
	}
	app.SummarizeHandler = summarize.NewHandler(app.SummarizeService)

	sender, err := mailer.NewSMTPSender(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
		cfg.MailFromAddress,
		cfg.MailFromName,
	)
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			log.Printf("bootstrap: SMTP credentials missing; email delivery disabled")
		}
		app.MailService = &mailer.Service{}
	} else {
		app.MailService = &mailer.Service{Sender: sender}
	}
	app.MailHandler = mailer.NewHandler(app.MailService)

	app.GoogleAuth = auth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "development", "local", "staging", "test", "":
		return true
	default:
		return false
	}
}
