package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	authmw "github.com/mind-engage/writescore/internal/auth/middleware"
)

const (
	SessionCookie = "ws_session_id"
	sessionPrefix = "session|"
	sessionMaxAge = 30 * 24 * time.Hour
)

// SessionHandler issues an anonymous student token. The session id lives in
// a cookie so the same browser keeps its history across page loads.
//
// POST /auth/session
func SessionHandler(a *authmw.AuthService, secureCookie bool) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		Subject     string `json:"subject"`
		Role        string `json:"role"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(SessionCookie); err == nil && strings.HasPrefix(c.Value, sessionPrefix) {
			id = c.Value
		}
		if id == "" {
			id = sessionPrefix + uuid.NewString()
		}

		tok, err := a.IssueJWT(id, authmw.RoleStudent)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		sameSite := http.SameSiteLaxMode
		if secureCookie {
			sameSite = http.SameSiteNoneMode
		}
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: sameSite,
			Expires:  time.Now().Add(sessionMaxAge),
		})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Subject: id, Role: authmw.RoleStudent})
	}
}
