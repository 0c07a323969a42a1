package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"authboard/app/dto"
	jwtutil "authboard/app/jwt"

	jwt "github.com/golang-jwt/jwt/v5"
)

type ctxKey int

const claimsKey ctxKey = 1

// Auth gates protected routes. Handlers behind RequireAuth receive resolved
// claims from the request context and never re-parse the token.
type Auth struct{ Signer *jwtutil.Signer }

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" {
			dto.WriteError(w, http.StatusUnauthorized, "Token is missing")
			return
		}
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			dto.WriteError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}
		claims, err := a.Signer.Parse(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				dto.WriteError(w, http.StatusUnauthorized, "Token has expired")
				return
			}
			dto.WriteError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin layers a sentinel role check on top of RequireAuth. The
// "admin" username is a placeholder gate, not a role system.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaims(r.Context())
		if claims == nil || claims.Username != "admin" {
			dto.WriteError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}
