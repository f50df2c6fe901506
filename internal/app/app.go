package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"uniformnavi/internal/config"
	"uniformnavi/internal/content"
	"uniformnavi/internal/db"
	"uniformnavi/internal/handlers"
	"uniformnavi/internal/logger"
	"uniformnavi/internal/repository"
	"uniformnavi/internal/routes"
	"uniformnavi/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *mux.Router
	Posts  *services.PostService

	db     *db.DB
	mailer services.Mailer
}

// NewContentLoader builds the content pipeline over cfg.ContentDir.
func NewContentLoader(cfg *config.Config) *content.Loader {
	fsys := os.DirFS(cfg.ContentDir)
	return content.NewLoader(fsys, content.NewAssembler(fsys, content.NewRenderer(), cfg.DefaultAuthor))
}

// InitApp wires repositories, services and handlers. Without database
// settings the site still serves content; submissions answer 500.
func InitApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if !services.ContentDirExists(cfg.ContentDir) {
		return nil, fmt.Errorf("content directory %q does not exist", cfg.ContentDir)
	}

	a := &App{Config: cfg}

	var (
		contactRepo repository.ContactRepo = repository.NewUnavailableContactRepo()
		inquiryRepo repository.InquiryRepo = repository.NewUnavailableInquiryRepo()
		dbCheck     handlers.HealthChecker
	)
	if cfg.DBConfigured() {
		conn, err := db.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := conn.EnsureSchema(ctx); err != nil {
			conn.Close()
			return nil, err
		}
		logger.Log.Info("db: connected", zap.String("dsn", cfg.GetDSNSafe()))
		a.db = conn
		dbCheck = conn
		contactRepo = repository.NewContactRepo(conn.Pool)
		inquiryRepo = repository.NewInquiryRepo(conn.Pool)
	}

	a.mailer = services.NewMailer(cfg)
	notifier := services.NewNotifier(a.mailer, cfg.AdminEmail, cfg.SMTPTimeout)

	// Services
	a.Posts = services.NewPostService(NewContentLoader(cfg), cfg.ContentCacheTTL)
	taxonomySvc := services.NewTaxonomyService(a.Posts)
	contactSvc := services.NewContactService(contactRepo, notifier)
	advisorSvc := services.NewAdvisorService(inquiryRepo, notifier)

	// Handlers
	checks := map[string]handlers.HealthChecker{"mail": a.mailer}
	if dbCheck != nil {
		checks["database"] = dbCheck
	}
	h := routes.Handlers{
		Posts:    handlers.NewPostHandler(a.Posts),
		Taxonomy: handlers.NewTaxonomyHandler(taxonomySvc, a.Posts),
		Search:   handlers.NewSearchHandler(a.Posts),
		Contact:  handlers.NewContactHandler(contactSvc),
		Advisor:  handlers.NewAdvisorHandler(advisorSvc),
		Health:   handlers.NewHealthHandler(a.Posts, checks),
		Admin:    handlers.NewAdminHandler(contactSvc, advisorSvc, a.Posts),
		Logs:     handlers.NewAdminLogsHandler(logger.LogDir),
	}

	a.Router = mux.NewRouter()
	routes.InitRoutes(a.Router, h, cfg.JWTSecret)

	return a, nil
}

// Handler is the router behind CORS.
func (a *App) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{a.Config.SiteURL},
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
	})
	if a.Config.Env == "dev" {
		c = cors.AllowAll()
	}
	return c.Handler(a.Router)
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mailer != nil {
		_ = a.mailer.Close()
	}
}
