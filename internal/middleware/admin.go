package middleware

import (
	"net/http"

	"github.com/kr1119/portfolio-backend/internal/contextkeys"
	"github.com/kr1119/portfolio-backend/internal/domain"
	"github.com/kr1119/portfolio-backend/internal/handler"
)

// AdminOnly middleware ensures the operator has the admin role.
// Must be used AFTER Auth middleware which sets contextkeys.Role in context.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value(contextkeys.Role).(string)
		if !ok || role != domain.RoleAdmin {
			handler.JSON(w, http.StatusForbidden, map[string]string{"error": "forbidden: admin access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
