package middleware

import (
	"net/http"

	"news-management/internal/apperr"
	"news-management/internal/i18n"
	"news-management/internal/reqctx"
)

func OnlyRole(tr *i18n.Translator, role string) func(http.Handler) http.Handler {
	return AnyRole(tr, role)
}

func AnyRole(tr *i18n.Translator, allowedRoles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		roleSet[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// фастлейн для админа
			if SkipGuards(r.Context()) {
				next.ServeHTTP(w, r)
				return
			}

			userRole, ok := reqctx.GetRole(r.Context())
			if !ok {
				deny(w, r, tr, http.StatusUnauthorized, apperr.Unauthorized)
				return
			}
			if _, found := roleSet[userRole]; !found {
				deny(w, r, tr, http.StatusForbidden, apperr.Forbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
