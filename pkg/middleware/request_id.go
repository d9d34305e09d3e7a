package middleware

import (
	"net/http"

	"cinema-catalog/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen caps client-supplied ids so they cannot bloat log lines.
const maxRequestIDLen = 128

// RequestID propagates the caller's X-Request-ID, or generates one, into
// the request context and the response headers.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = utils.GenerateRequestID()
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := utils.SetRequestIDContext(r.Context(), id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
