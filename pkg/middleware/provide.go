package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/constants"
)

// Provide injects a static value into every request context under the given
// key.
func Provide(key constants.ContextKey, value any) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), key, value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestParams captures per-request metadata (client IP, user agent) into
// the context for downstream consumers such as the audit trail.
func RequestParams() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params := &composables.Params{
				IP:        ClientIP(r),
				UserAgent: r.UserAgent(),
				Request:   r,
				Writer:    w,
			}
			ctx := composables.WithParams(r.Context(), params)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
