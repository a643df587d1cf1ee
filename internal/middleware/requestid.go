package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/kr1119/portfolio-backend/internal/contextkeys"
)

// HeaderRequestID is echoed on every response.
const HeaderRequestID = "X-Request-Id"

// RequestID tags each request with the caller's id or a fresh UUID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)

		ctx := context.WithValue(r.Context(), contextkeys.RequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the id set by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(contextkeys.RequestID).(string)
	return id
}
