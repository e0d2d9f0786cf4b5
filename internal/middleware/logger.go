package middleware

import (
	"net/http"
	"time"

	"news-management/internal/logger"
	"news-management/internal/reqctx"

	"go.uber.org/zap"
)

// Logging пишет итог запроса. Должен стоять после RequestID.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lrw := newStatusRecorder(w)
		next.ServeHTTP(lrw, r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", lrw.statusCode),
			zap.Duration("duration", time.Since(start)),
		}
		if locale, ok := reqctx.GetLocale(r.Context()); ok {
			fields = append(fields, zap.String("locale", locale))
		}

		logger.WithCtx(r.Context()).Info("HTTP-запрос", fields...)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *statusRecorder) WriteHeader(code int) {
	if !lrw.written {
		lrw.statusCode = code
		lrw.written = true
	}
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *statusRecorder) Write(b []byte) (int, error) {
	lrw.written = true
	return lrw.ResponseWriter.Write(b)
}
