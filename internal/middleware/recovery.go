package middleware

import (
	"net/http"
	"runtime/debug"

	"news-management/internal/apperr"
	"news-management/internal/i18n"
	"news-management/internal/logger"

	"go.uber.org/zap"
)

func Recoverer(tr *i18n.Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.WithCtx(r.Context()).Error("panic recovered",
						zap.Any("panic", rec),
						zap.ByteString("stack", debug.Stack()),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)
					deny(w, r, tr, http.StatusInternalServerError, apperr.InternalError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
