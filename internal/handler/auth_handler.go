package handler

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"
	"net/http"

	"edupress/internal/auth"
	"edupress/internal/data"
	"edupress/internal/logger"
	"edupress/internal/session"

	"golang.org/x/oauth2"
)

// Authenticator runs the OIDC authorization code flow.
type Authenticator interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string) (*auth.IdentityClaims, error)
}

// AuthHandler holds the dependencies for the authentication handlers.
type AuthHandler struct {
	auth     Authenticator
	sessions session.Manager
	log      logger.Logger
}

// NewAuthHandler creates a new AuthHandler. a may be nil when no identity provider is
// configured; login then answers 503.
func NewAuthHandler(a Authenticator, sm session.Manager, log logger.Logger) *AuthHandler {
	return &AuthHandler{auth: a, sessions: sm, log: log}
}

// handleLogin redirects the user to the OIDC provider to log in.
// It uses a random 'state' string for CSRF protection.
func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		http.Error(w, "Sign-in is not configured", http.StatusServiceUnavailable)
		return
	}
	state, err := randString(16)
	if err != nil {
		h.log.Error(err, "failed to generate oauth state")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.sessions.Put(r.Context(), session.KeyState, state)
	http.Redirect(w, r, h.auth.AuthCodeURL(state), http.StatusFound)
}

// handleCallback completes the code exchange and stores the identity in the session.
func (h *AuthHandler) handleCallback(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		http.Error(w, "Sign-in is not configured", http.StatusServiceUnavailable)
		return
	}
	state := h.sessions.PopString(r.Context(), session.KeyState)
	if state == "" || r.URL.Query().Get("state") != state {
		http.Error(w, "state did not match", http.StatusBadRequest)
		return
	}

	claims, err := h.auth.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		h.log.Error(err, "failed to complete sign-in")
		http.Error(w, "Failed to complete sign-in", http.StatusUnauthorized)
		return
	}

	role := data.Role(claims.Role)
	if !role.Valid() {
		role = data.RoleViewer
	}

	// Renew the token whenever the privilege level changes.
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		h.log.Error(err, "failed to renew session token")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.sessions.Put(r.Context(), session.KeySubject, claims.Subject)
	h.sessions.Put(r.Context(), session.KeyName, claims.Name)
	h.sessions.Put(r.Context(), session.KeyRole, string(role))

	h.log.With(map[string]interface{}{"subject": claims.Subject, "role": string(role)}).Info("user signed in")
	http.Redirect(w, r, "/", http.StatusFound)
}

// handleLogout ends the session.
func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		h.log.Error(err, "failed to destroy session")
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// randString is a helper function to generate a random string for the 'state' parameter.
func randString(nByte int) (string, error) {
	b := make([]byte, nByte)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
