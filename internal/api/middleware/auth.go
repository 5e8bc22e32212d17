package middleware

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const clientContextKey contextKey = "client"

// ClientFromContext returns the fingerprint of the API key that
// authenticated the request, or "" when auth is disabled.
func ClientFromContext(ctx context.Context) string {
	c, _ := ctx.Value(clientContextKey).(string)
	return c
}

// APIKeyAuth requires "Authorization: Bearer <key>" matching apiKey.
// An empty apiKey lets every request through.
func APIKeyAuth(apiKey string) func(http.Handler) http.Handler {
	expected := sha256.Sum256([]byte(apiKey))

	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			got := sha256.Sum256([]byte(parts[1]))
			if subtle.ConstantTimeCompare(got[:], expected[:]) != 1 {
				writeError(w, http.StatusUnauthorized, "invalid API key")
				return
			}

			ctx := context.WithValue(r.Context(), clientContextKey, fingerprint(got))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// fingerprint is a short, loggable prefix of the key hash.
func fingerprint(hash [sha256.Size]byte) string {
	return hex.EncodeToString(hash[:4])
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
