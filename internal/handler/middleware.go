package handler

import (
	"context"
	"net/http"
	"strings"

	"lingua-reader/internal/domain"
)

// AuthMiddleware validates Supabase JWT tokens and stores the user and raw
// token on the request context for downstream handlers.
func AuthMiddleware(supabaseClient domain.SupabaseClient, logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Get token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "Authorization header required")
				return
			}

			// Extract token from "Bearer <token>" format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
				return
			}

			token := parts[1]
			if token == "" {
				writeError(w, http.StatusUnauthorized, "Token required")
				return
			}

			// Validate token with Supabase
			user, err := supabaseClient.ValidateToken(token)
			if err != nil {
				logger.Warn("Token validation failed", "error", err)
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			// Add user and token to request context
			ctx := context.WithValue(r.Context(), userContextKey, user)
			ctx = context.WithValue(ctx, tokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
