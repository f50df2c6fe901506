package handlers

import (
	"context"
	"net/http"
	"time"

	"uniformnavi/internal/logger"
	"uniformnavi/internal/services"
	helpers "uniformnavi/internal/utils/helpers"

	"go.uber.org/zap"
)

// HealthChecker is implemented by the database handle and the mailer.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]HealthChecker
	posts  *services.PostService
}

// NewHealthHandler takes the named dependencies probed by Ready. Nil checkers are skipped.
func NewHealthHandler(posts *services.PostService, checks map[string]HealthChecker) *HealthHandler {
	active := make(map[string]HealthChecker, len(checks))
	for name, c := range checks {
		if c != nil {
			active[name] = c
		}
	}
	return &HealthHandler{checks: active, posts: posts}
}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports 503 when the content directory or a dependency is unusable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := map[string]string{}
	healthy := true

	if _, err := h.posts.All(ctx); err != nil {
		status["content"] = "unavailable"
		healthy = false
		logger.WithCtx(ctx).Warn("health: content not loadable", zap.Error(err))
	} else {
		status["content"] = "ok"
	}

	for name, c := range h.checks {
		if err := c.HealthCheck(ctx); err != nil {
			status[name] = "unavailable"
			healthy = false
			logger.WithCtx(ctx).Warn("health: dependency check failed", zap.String("dependency", name), zap.Error(err))
			continue
		}
		status[name] = "ok"
	}

	if !healthy {
		helpers.Write(w, http.StatusServiceUnavailable, helpers.Response{Success: false, Error: "not ready", Data: status})
		return
	}
	helpers.JSON(w, http.StatusOK, status)
}
