package middleware

import (
	"net/http"

	"news-management/internal/i18n"
	"news-management/internal/reqctx"
)

// Locale кладёт в контекст язык ответа.
// Параметр ?lang= важнее заголовка Accept-Language.
func Locale(tr *i18n.Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Accept-Language")
			if lang := r.URL.Query().Get("lang"); lang != "" {
				header = lang
			}
			locale := tr.Match(header)
			w.Header().Set("Content-Language", locale)
			next.ServeHTTP(w, r.WithContext(reqctx.WithLocale(r.Context(), locale)))
		})
	}
}
