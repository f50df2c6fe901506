package routes

import (
	"net/http"

	"uniformnavi/internal/handlers"
	"uniformnavi/internal/middleware"
	helpers "uniformnavi/internal/utils/helpers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Posts    *handlers.PostHandler
	Taxonomy *handlers.TaxonomyHandler
	Search   *handlers.SearchHandler
	Contact  *handlers.ContactHandler
	Advisor  *handlers.AdvisorHandler
	Health   *handlers.HealthHandler
	Admin    *handlers.AdminHandler
	Logs     *handlers.AdminLogsHandler
}

func InitRoutes(router *mux.Router, h Handlers, jwtSecret string) {
	router.Use(middleware.RequestID, middleware.Recoverer, middleware.Logging, middleware.Metrics)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.Error(w, http.StatusNotFound, "ページが見つかりません")
	})

	router.HandleFunc("/health/live", h.Health.Live).Methods(http.MethodGet)
	router.HandleFunc("/health/ready", h.Health.Ready).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// --- public ---
	api.HandleFunc("/posts", h.Posts.List).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", h.Posts.Get).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/related", h.Posts.Related).Methods(http.MethodGet)

	api.HandleFunc("/categories", h.Taxonomy.Categories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{category}/posts", h.Taxonomy.CategoryPosts).Methods(http.MethodGet)
	api.HandleFunc("/tags", h.Taxonomy.Tags).Methods(http.MethodGet)
	api.HandleFunc("/tags/{tag}/posts", h.Taxonomy.TagPosts).Methods(http.MethodGet)

	api.HandleFunc("/search", h.Search.Search).Methods(http.MethodGet)

	api.HandleFunc("/contact", h.Contact.Submit).Methods(http.MethodPost)
	api.HandleFunc("/advisor/recommendations", h.Advisor.Recommendations).Methods(http.MethodGet)
	api.HandleFunc("/advisor/inquiries", h.Advisor.SubmitInquiry).Methods(http.MethodPost)

	// --- admin (JWT, role admin) ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.JWTAuth(jwtSecret), middleware.OnlyRole("admin"))
	admin.HandleFunc("/contacts", h.Admin.Contacts).Methods(http.MethodGet)
	admin.HandleFunc("/inquiries", h.Admin.Inquiries).Methods(http.MethodGet)
	admin.HandleFunc("/content/reload", h.Admin.ReloadContent).Methods(http.MethodPost)
	admin.HandleFunc("/logs/days", h.Logs.ListDays).Methods(http.MethodGet)
	admin.HandleFunc("/logs", h.Logs.GetLogs).Methods(http.MethodGet)
}
