package middleware

import (
	"context"
	"net/http"
	"strings"

	"news-management/internal/apperr"
	"news-management/internal/i18n"
	"news-management/internal/logger"
	"news-management/internal/reqctx"
	"news-management/internal/utils"

	"go.uber.org/zap"
)

type TokenParser interface {
	ParseToken(ctx context.Context, token string) (*utils.Claims, error)
}

func JWTAuth(parser TokenParser, tr *i18n.Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.WithCtx(r.Context()).Warn("JWTAuth: отсутствует access token")
				deny(w, r, tr, http.StatusUnauthorized, apperr.Unauthorized)
				return
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := parser.ParseToken(r.Context(), tokenString)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: неверный, просроченный или отозванный токен", zap.Error(err))
				deny(w, r, tr, http.StatusUnauthorized, apperr.Unauthorized)
				return
			}

			ctx := reqctx.WithUserID(r.Context(), claims.UserID)
			ctx = reqctx.WithRole(ctx, claims.Role)
			ctx = reqctx.WithToken(ctx, tokenString)

			logger.WithCtx(ctx).Debug("JWTAuth: токен валиден", zap.String("role", claims.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
