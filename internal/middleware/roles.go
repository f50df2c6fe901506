package middleware

import (
	"net/http"

	"uniformnavi/internal/reqctx"
	helpers "uniformnavi/internal/utils/helpers"
)

// OnlyRole must run after JWTAuth.
func OnlyRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userRole, ok := reqctx.GetRole(r.Context())
			if !ok || userRole != role {
				helpers.Error(w, http.StatusForbidden, "アクセスが拒否されました")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
