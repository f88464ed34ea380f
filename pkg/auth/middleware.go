package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type contextKey string

const (
	profileIDKey contextKey = "profile_id"
	roleKey      contextKey = "role"
)

const adminRole = "admin"

// ProfileIDFromContext returns the authenticated profile id, if any.
func ProfileIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(profileIDKey).(string)
	return v, ok
}

// RoleFromContext returns the authenticated role, if any.
func RoleFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(roleKey).(string)
	return v, ok
}

// WithSession sets the authenticated profile id and role on the context.
func WithSession(ctx context.Context, profileID, role string) context.Context {
	ctx = context.WithValue(ctx, profileIDKey, profileID)
	return context.WithValue(ctx, roleKey, role)
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireAdmin verifies the session cookie on every request and rejects
// anything but a live admin session. No data handler runs without it. An
// expired or forged token also clears the cookie so the client falls back to
// the login page.
func RequireAdmin(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			profileID, role, err := VerifyToken(cookie.Value, secret, time.Now())
			if err != nil {
				ClearSessionCookie(w)
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_session"})
				return
			}

			if role != adminRole {
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
				return
			}

			ctx := WithSession(r.Context(), profileID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
