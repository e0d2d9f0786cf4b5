package middleware

import (
	"net/http"

	"news-management/internal/models"
	"news-management/internal/reqctx"
)

// AdminFastLane должен стоять ПОСЛЕ JWTAuth, чтобы роль уже была в контексте.
func AdminFastLane(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if role, _ := reqctx.GetRole(r.Context()); role == models.RoleAdmin {
			r = r.WithContext(WithSkipGuards(r.Context()))
		}
		next.ServeHTTP(w, r)
	})
}
