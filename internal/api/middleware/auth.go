package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/inotebook/server/internal/service"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

type contextKey string

const identityKey contextKey = "identity"

// Session verifies the session cookie and attaches the caller's identity to
// the request context. Requests without a valid token are rejected with 401.
func Session(tokens *service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			// Some clients serialize a missing token as the literal
			// string "undefined"
			if err != nil || cookie.Value == "" || cookie.Value == "undefined" {
				unauthorized(w)
				return
			}

			identity, err := tokens.VerifySessionToken(cookie.Value)
			if err != nil {
				log.Printf("ERROR [middleware.Session] token verification failed: %v", err)
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, *identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity returns the verified identity attached by Session.
func GetIdentity(ctx context.Context) (service.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(service.Identity)
	return identity, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Please authenticate using a valid token"})
}
