package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"uniformnavi/internal/content"
	"uniformnavi/internal/logger"
	"uniformnavi/internal/services"
	helpers "uniformnavi/internal/utils/helpers"

	"go.uber.org/zap"
)

const (
	msgNotFound      = "記事が見つかりません"
	msgBrokenPost    = "記事を読み込めませんでした"
	msgInvalidInput  = "入力内容に誤りがあります"
	msgInvalidJSON   = "リクエストの形式が正しくありません"
	msgInternalError = "サーバーエラーが発生しました"

	maxBodyBytes = 64 << 10
)

// writeError maps service and content errors to responses. Raw error text
// never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.WithCtx(r.Context())

	var (
		nf  *content.NotFoundError
		mce *content.MalformedContentError
		re  *content.RenderError
		ve  *services.ValidationError
	)
	switch {
	case errors.As(err, &nf):
		helpers.Error(w, http.StatusNotFound, msgNotFound)
	case errors.As(err, &ve):
		helpers.ValidationError(w, msgInvalidInput, ve.Fields)
	case errors.As(err, &mce), errors.As(err, &re):
		log.Error("content error", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, msgBrokenPost)
	default:
		log.Error("request failed", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, fallback)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.WithCtx(r.Context()).Warn("invalid json body", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return false
	}
	return true
}

func clampAtoi(s string, def, min, max int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
