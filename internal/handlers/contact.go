package handlers

import (
	"net/http"

	"uniformnavi/internal/models"
	"uniformnavi/internal/services"
	helpers "uniformnavi/internal/utils/helpers"
)

const (
	msgContactAccepted = "お問い合わせを受け付けました。"
	msgContactFailed   = "お問い合わせの送信に失敗しました。"
)

type ContactHandler struct {
	svc *services.ContactService
}

func NewContactHandler(svc *services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit
// @Summary      Send the contact form
// @Description  Stores the submission and notifies the administrator. A failed email does not fail the request.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body body models.ContactRequest true "Form fields"
// @Success      200 {object} helpers.Response
// @Failure      400 {object} helpers.Response
// @Failure      500 {object} helpers.Response
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.svc.Submit(r.Context(), req); err != nil {
		writeError(w, r, err, msgContactFailed)
		return
	}
	helpers.Message(w, http.StatusOK, msgContactAccepted, nil)
}
