package middleware

import (
	"net/http"
	"strings"

	"github.com/pradeepkasula/online-shopping-cart/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

// Auth parses a bearer token issued by the user service and, when valid,
// attaches the caller's identity to the request context. Requests without a
// usable token pass through unauthenticated; per-route checks decide what
// anonymous callers may do.
func Auth(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				return key, nil
			})
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}

			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if uid, ok := claims["user_id"].(float64); ok {
					role, _ := claims["role"].(string)
					ctx := utils.SetUserContext(r.Context(), uint(uid), role)
					r = r.WithContext(ctx)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
