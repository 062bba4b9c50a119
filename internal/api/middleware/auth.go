package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

// SessionResolver maps a bearer token back to the account it was issued to.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*entities.User, error)
}

// RequireAdmin rejects requests that do not carry a valid session token
// belonging to the admin account. The browser-held role flag is treated
// as a display hint only; authorization happens here.
func RequireAdmin(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				denyJSON(w, http.StatusUnauthorized, "missing session token")
				return
			}

			user, err := sessions.Resolve(r.Context(), token)
			if err != nil {
				denyJSON(w, http.StatusUnauthorized, "invalid or expired session token")
				return
			}

			if user.Username != "admin" {
				log.Warn().Str("username", user.Username).Str("path", r.URL.Path).Msg("non-admin account attempted admin endpoint")
				denyJSON(w, http.StatusForbidden, "admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, prefix))
}

func denyJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
