package middleware

import (
	"net/http"

	"uniformnavi/internal/reqctx"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the client's X-Request-ID when present and generates one otherwise.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(RequestIDHeader)
		if rid == "" || len(rid) > 128 {
			rid = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, rid)
		next.ServeHTTP(w, r.WithContext(reqctx.WithRequestID(r.Context(), rid)))
	})
}
