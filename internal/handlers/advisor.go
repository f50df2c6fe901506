package handlers

import (
	"net/http"
	"strings"

	"uniformnavi/internal/models"
	"uniformnavi/internal/services"
	helpers "uniformnavi/internal/utils/helpers"
)

type AdvisorHandler struct {
	svc *services.AdvisorService
}

func NewAdvisorHandler(svc *services.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{svc: svc}
}

// Recommendations
// @Summary      Product recommendations for the advisor answers
// @Tags         advisor
// @Produce      json
// @Param        category        query string true  "workwear | security | cooling"
// @Param        securityBrand   query string false "best | kinsei"
// @Param        workwearFeature query string false "durability | comfort | cost"
// @Param        coolingFeature  query string false "battery | airflow | lightweight"
// @Success      200 {object} helpers.Response
// @Router       /api/advisor/recommendations [get]
func (h *AdvisorHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel := models.AdvisorSelection{
		Category:        strings.TrimSpace(q.Get("category")),
		SecurityBrand:   strings.TrimSpace(q.Get("securityBrand")),
		WorkwearFeature: strings.TrimSpace(q.Get("workwearFeature")),
		CoolingFeature:  strings.TrimSpace(q.Get("coolingFeature")),
	}
	helpers.JSON(w, http.StatusOK, map[string]any{
		"selection":       sel,
		"recommendations": h.svc.Recommend(sel),
	})
}

// SubmitInquiry
// @Summary      Send an advisor lead
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Param        body body models.AdvisorInquiryRequest true "Lead"
// @Success      201 {object} helpers.Response
// @Failure      400 {object} helpers.Response
// @Failure      500 {object} helpers.Response
// @Router       /api/advisor/inquiries [post]
func (h *AdvisorHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var req models.AdvisorInquiryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in, err := h.svc.SubmitInquiry(r.Context(), req)
	if err != nil {
		writeError(w, r, err, msgInternalError)
		return
	}
	helpers.Message(w, http.StatusCreated, "お問い合わせを受け付けました", map[string]string{"id": in.ID})
}
