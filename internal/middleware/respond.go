package middleware

import (
	"net/http"

	"news-management/internal/i18n"
	"news-management/internal/reqctx"
	helpers "news-management/internal/utils/helpres"
)

func deny(w http.ResponseWriter, r *http.Request, tr *i18n.Translator, status int, code string) {
	locale, _ := reqctx.GetLocale(r.Context())
	helpers.ErrorCode(w, status, code, tr.Message(locale, code))
}
