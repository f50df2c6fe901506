package handlers

import (
	"net/http"
	"strings"

	"uniformnavi/internal/logger"
	"uniformnavi/internal/models"
	"uniformnavi/internal/services"
	helpers "uniformnavi/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PostHandler struct {
	svc *services.PostService
}

func NewPostHandler(svc *services.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

func summaries(posts []*models.Post) []models.PostSummary {
	out := make([]models.PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Summary())
	}
	return out
}

// List
// @Summary      List posts
// @Description  Newest first. Every given filter must match.
// @Tags         posts
// @Produce      json
// @Param        category query string false "Category, compared after normalisation"
// @Param        tag      query string false "Tag, case-insensitive"
// @Param        title    query string false "Title substring, case-insensitive"
// @Param        date     query string false "Publication day (YYYY-MM-DD)"
// @Success      200 {object} helpers.Response
// @Router       /api/posts [get]
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.PostFilter{
		Category: strings.TrimSpace(q.Get("category")),
		Tag:      strings.TrimSpace(q.Get("tag")),
		Title:    strings.TrimSpace(q.Get("title")),
		Date:     strings.TrimSpace(q.Get("date")),
	}

	posts, err := h.svc.Query(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, msgInternalError)
		return
	}
	helpers.JSON(w, http.StatusOK, summaries(posts))
}

// Get
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post id (file name without .md)"
// @Success      200 {object} helpers.Response
// @Failure      404 {object} helpers.Response
// @Failure      500 {object} helpers.Response
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Info("posts: lookup failed", zap.String("id", id), zap.Error(err))
		writeError(w, r, err, msgInternalError)
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// Related
// @Summary      Related posts
// @Description  Posts listed in relatedPosts, then the newest of the same category.
// @Tags         posts
// @Produce      json
// @Param        id    path  string true  "Post id"
// @Param        limit query int    false "Maximum number of posts (default 3, max 12)"
// @Success      200 {object} helpers.Response
// @Failure      404 {object} helpers.Response
// @Router       /api/posts/{id}/related [get]
func (h *PostHandler) Related(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	limit := clampAtoi(r.URL.Query().Get("limit"), 3, 1, 12)

	posts, err := h.svc.Related(r.Context(), id, limit)
	if err != nil {
		writeError(w, r, err, msgInternalError)
		return
	}
	helpers.JSON(w, http.StatusOK, summaries(posts))
}
