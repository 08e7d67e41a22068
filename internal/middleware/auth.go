package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"

	"github.com/casinoapp/casino-games/internal/models"
	"github.com/casinoapp/casino-games/internal/utils"
)

// AuthMiddleware checks for a valid bearer JWT and adds the user id to the
// request context
func AuthMiddleware(jwtSecretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorizationHeader := r.Header.Get("Authorization")
			if authorizationHeader == "" {
				unauthorized(w, "Authorization header required")
				return
			}

			tokenString, ok := strings.CutPrefix(authorizationHeader, "Bearer ")
			if !ok || tokenString == "" {
				unauthorized(w, "Invalid authorization header")
				return
			}

			// Parse and validate the token
			claims := &models.Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return jwtSecretKey, nil
			})

			if err != nil || !token.Valid {
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserIDToContext(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
