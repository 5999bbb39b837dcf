// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Ar-Dante/Quiz-platform/internal/auth"
	"github.com/google/uuid"
)

type UserContextKey string

var UserIDKey UserContextKey = "quiz_user_id"

// AuthMiddleware resolves the caller from a bearer JWT and stores its id in the
// request context.
func AuthMiddleware(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := tokenManager.Validate(token)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}
			userID, err := claims.UserID()
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// UserID returns the authenticated caller, if any.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}

type errorBody struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorBody{Error: message})
}
