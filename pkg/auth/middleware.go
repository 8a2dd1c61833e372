package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/pkg/utils"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	RoleKey   ContextKey = "role"
)

const APIKeyHeader = "X-Api-Key"

// AuthMiddleware accepts requests carrying a valid bearer token and stores
// the caller's id and role in the request context.
func AuthMiddleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got, _ := r.Context().Value(RoleKey).(string); got != role {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// APIKeyMiddleware authenticates system callers by the X-Api-Key header
// against a bcrypt hash.
func APIKeyMiddleware(keyHash string, hasher HashServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hasher.CompareKey(keyHash, r.Header.Get(APIKeyHeader)) {
				zap.L().Warn("rejected webhook call", zap.String("remote", r.RemoteAddr), zap.String("path", r.URL.Path))
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns the caller stored by AuthMiddleware.
func UserFromContext(ctx context.Context) (userID int64, role string, ok bool) {
	userID, ok = ctx.Value(UserIDKey).(int64)
	if !ok {
		return 0, "", false
	}
	role, ok = ctx.Value(RoleKey).(string)
	return userID, role, ok
}
