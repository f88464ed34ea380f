package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/codexa/backend/internal/service"
	"github.com/codexa/backend/pkg/auth"
)

// AuthHandler handles back-office login, logout, and session introspection.
type AuthHandler struct {
	authService   service.AuthService
	sessionSecret []byte
	sessionTTL    time.Duration
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authService service.AuthService, sessionSecret []byte, sessionTTL time.Duration) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = auth.DefaultTTL
	}
	return &AuthHandler{
		authService:   authService,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
	}
}

// loginRequest is the expected JSON body for POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. On success it sets an HttpOnly cookie
// holding a signed token that expires after the fixed session window.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email_required")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "password_required")
		return
	}

	profile, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := auth.NewToken(profile.ID, profile.Role, h.sessionSecret, h.sessionTTL, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, profile)
}

// Logout handles POST /api/auth/logout by expiring the session cookie. The
// token itself simply ages out; there is no server-side session table.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/me: it validates the session cookie and returns the
// profile behind it.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.SessionCookieName)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profileID, _, err := auth.VerifyToken(cookie.Value, h.sessionSecret, time.Now())
	if err != nil {
		auth.ClearSessionCookie(w)
		writeError(w, http.StatusUnauthorized, "invalid_session")
		return
	}

	profile, err := h.authService.ProfileByID(r.Context(), profileID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
