package middleware

import (
	"net/http"
	"strings"

	"uniformnavi/internal/logger"
	"uniformnavi/internal/reqctx"
	helpers "uniformnavi/internal/utils/helpers"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// JWTAuth accepts HS256 bearer tokens signed with secret and stores the
// subject and role in the request context. An empty secret rejects everything.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.WithCtx(r.Context())

			if secret == "" {
				log.Warn("jwt: JWT_SECRET is not set, admin API disabled")
				helpers.Error(w, http.StatusUnauthorized, "認証が必要です")
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				log.Warn("jwt: missing access token")
				helpers.Error(w, http.StatusUnauthorized, "認証が必要です")
				return
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				log.Warn("jwt: invalid or expired token", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "トークンが無効か期限切れです")
				return
			}

			sub, _ := claims.GetSubject()
			role, ok := claims["role"].(string)
			if !ok {
				log.Warn("jwt: token has no role claim", zap.String("sub", sub))
				helpers.Error(w, http.StatusUnauthorized, "トークンが無効か期限切れです")
				return
			}

			ctx := reqctx.WithSubject(r.Context(), sub)
			ctx = reqctx.WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
