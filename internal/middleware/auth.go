// Package middleware contains the HTTP middleware guarding protected routes.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/himanshu221/medium-backend/internal/token"
)

type ctxKey string

const userIDKey ctxKey = "mb.userID"

// WithUserID stores the authenticated user id in context.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserID fetches the authenticated user id from context.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// Auth returns middleware that extracts the bearer token from the
// Authorization header, verifies it, and injects the resolved user id into
// the request context. Missing or malformed headers and failed verification
// short-circuit with 403 and never reach the handler.
func Auth(tokens *token.Manager, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Debugf("Rejected request to %s: malformed authorization header", r.URL.Path)
				deny(w)
				return
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				log.Debugf("Rejected request to %s: %v", r.URL.Path, err)
				deny(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func deny(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	json.NewEncoder(w).Encode(map[string]string{"message": "User Not Authorized"})
}
