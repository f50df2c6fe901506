package handlers

import (
	"net/http"

	"uniformnavi/internal/models"
	"uniformnavi/internal/services"
	helpers "uniformnavi/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type TaxonomyHandler struct {
	svc   *services.TaxonomyService
	posts *services.PostService
}

func NewTaxonomyHandler(svc *services.TaxonomyService, posts *services.PostService) *TaxonomyHandler {
	return &TaxonomyHandler{svc: svc, posts: posts}
}

// Categories
// @Summary      Categories with post counts
// @Tags         taxonomy
// @Produce      json
// @Success      200 {object} helpers.Response
// @Router       /api/categories [get]
func (h *TaxonomyHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Categories(r.Context())
	if err != nil {
		writeError(w, r, err, msgInternalError)
		return
	}
	helpers.JSON(w, http.StatusOK, cats)
}

// Tags
// @Summary      Tags with post counts
// @Tags         taxonomy
// @Produce      json
// @Success      200 {object} helpers.Response
// @Router       /api/tags [get]
func (h *TaxonomyHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.Tags(r.Context())
	if err != nil {
		writeError(w, r, err, msgInternalError)
		return
	}
	helpers.JSON(w, http.StatusOK, tags)
}

// CategoryPosts
// @Summary      Posts of one category
// @Tags         taxonomy
// @Produce      json
// @Param        category path string true "Category slug or name"
// @Success      200 {object} helpers.Response
// @Router       /api/categories/{category}/posts [get]
func (h *TaxonomyHandler) CategoryPosts(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	posts, err := h.posts.Query(r.Context(), models.PostFilter{Category: category})
	if err != nil {
		writeError(w, r, err, msgInternalError)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{
		"category": category,
		"name":     services.CategoryDisplayName(category),
		"posts":    summaries(posts),
	})
}

// TagPosts
// @Summary      Posts with one tag
// @Tags         taxonomy
// @Produce      json
// @Param        tag path string true "Tag"
// @Success      200 {object} helpers.Response
// @Router       /api/tags/{tag}/posts [get]
func (h *TaxonomyHandler) TagPosts(w http.ResponseWriter, r *http.Request) {
	tag := mux.Vars(r)["tag"]

	posts, err := h.posts.Query(r.Context(), models.PostFilter{Tag: tag})
	if err != nil {
		writeError(w, r, err, msgInternalError)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{
		"tag":   tag,
		"posts": summaries(posts),
	})
}
