package middleware

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"Agora/internal/core/identity"
)

// AuthMiddleware resolves the caller identity from Bearer tokens minted by
// the external identity provider. Tokens are HS256 JWTs signed with the
// instance secret; the subject claim is the caller principal. The provider
// itself (login, sessions, token minting) lives outside this service.
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware creates a new auth middleware with the instance secret
func NewAuthMiddleware(secret []byte) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// RequireAuth middleware ensures the caller presents a valid identity token.
// If not authenticated, returns 401.
// If authenticated, injects the caller principal into the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeAuthError(w, "Missing Authorization header. Expected: Bearer <token>")
			return
		}

		principal, err := m.verify(token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		ctx := identity.WithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the caller principal if a valid token is present but
// doesn't require one. Used for endpoints open to anonymous callers.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		principal, err := m.verify(token)
		if err != nil {
			// Invalid token on an open endpoint: continue anonymous
			next.ServeHTTP(w, r)
			return
		}

		ctx := identity.WithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// verify parses and validates the token, returning the caller principal.
// The signing method is pinned to HS256 to rule out algorithm confusion.
func (m *AuthMiddleware) verify(token string) (identity.Principal, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return identity.Anonymous, fmt.Errorf("failed to verify token: %w", err)
	}
	if !parsed.Valid {
		return identity.Anonymous, fmt.Errorf("token is not valid")
	}
	if claims.Subject == "" {
		return identity.Anonymous, fmt.Errorf("token has no subject claim")
	}
	return identity.Principal(claims.Subject), nil
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error response: %v", err)
	}
}
