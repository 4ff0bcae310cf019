package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/opencourse/enroll"
)

// RequestID adds a uuid to the request context under enroll.RequestIDKey.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), enroll.RequestIDKey, uuid.NewString())
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
