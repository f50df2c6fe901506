package handlers

import (
	"net/http"

	"uniformnavi/internal/logger"
	"uniformnavi/internal/reqctx"
	"uniformnavi/internal/services"
	helpers "uniformnavi/internal/utils/helpers"

	"go.uber.org/zap"
)

type AdminHandler struct {
	contacts *services.ContactService
	advisor  *services.AdvisorService
	posts    *services.PostService
}

func NewAdminHandler(contacts *services.ContactService, advisor *services.AdvisorService, posts *services.PostService) *AdminHandler {
	return &AdminHandler{contacts: contacts, advisor: advisor, posts: posts}
}

// Contacts
// @Summary      Stored contact submissions
// @Tags         admin
// @Security     ApiKeyAuth
// @Produce      json
// @Param        limit  query int false "Page size (default 50, max 200)"
// @Param        offset query int false "Offset"
// @Success      200 {object} helpers.Response
// @Router       /api/admin/contacts [get]
func (h *AdminHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	limit, offset := page(r)
	list, err := h.contacts.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, r, err, msgInternalError)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Inquiries
// @Summary      Stored advisor leads
// @Tags         admin
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200 {object} helpers.Response
// @Router       /api/admin/inquiries [get]
func (h *AdminHandler) Inquiries(w http.ResponseWriter, r *http.Request) {
	limit, offset := page(r)
	list, err := h.advisor.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, r, err, msgInternalError)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// ReloadContent
// @Summary      Reload posts from disk
// @Tags         admin
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200 {object} helpers.Response
// @Router       /api/admin/content/reload [post]
func (h *AdminHandler) ReloadContent(w http.ResponseWriter, r *http.Request) {
	n, err := h.posts.Reload(r.Context())
	if err != nil {
		writeError(w, r, err, msgInternalError)
		return
	}
	sub, _ := reqctx.GetSubject(r.Context())
	logger.WithCtx(r.Context()).Info("admin: content reloaded", zap.String("by", sub), zap.Int("count", n))
	helpers.JSON(w, http.StatusOK, map[string]int{"count": n})
}

func page(r *http.Request) (limit, offset int) {
	q := r.URL.Query()
	return clampAtoi(q.Get("limit"), 50, 1, 200), clampAtoi(q.Get("offset"), 0, 0, 1_000_000)
}
