package handlers

import (
	"net/http"
	"strings"
	"time"

	"uniformnavi/internal/logger"
	"uniformnavi/internal/services"
	helpers "uniformnavi/internal/utils/helpers"

	"go.uber.org/zap"
)

type SearchHandler struct {
	posts *services.PostService
}

func NewSearchHandler(posts *services.PostService) *SearchHandler {
	return &SearchHandler{posts: posts}
}

// Search godoc
// @Summary Search posts by title
// @Tags search
// @Produce json
// @Param query query string true "Search text"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response "empty query"
// @Router /api/search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		log.Warn("search: empty query")
		helpers.Error(w, http.StatusBadRequest, "検索キーワードを入力してください")
		return
	}

	start := time.Now()
	posts, err := h.posts.Search(r.Context(), query)
	if err != nil {
		writeError(w, r, err, msgInternalError)
		return
	}

	log.Info("search: done",
		zap.String("query", query),
		zap.Int("count", len(posts)),
		zap.Duration("elapsed", time.Since(start)),
	)
	helpers.JSON(w, http.StatusOK, map[string]any{
		"query": query,
		"posts": summaries(posts),
	})
}
