package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/e-lobo/herogram-go/internal/api"
	"github.com/e-lobo/herogram-go/internal/models"
	"github.com/e-lobo/herogram-go/internal/session"
)

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (g *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (g *Gateway) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		g.writeErrorEnvelope(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := g.auth.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	g.issueCookie(w, r, sess.Token)
	g.writeJSON(w, http.StatusOK, models.Envelope[models.Session]{
		Status: models.StatusSuccess,
		Data:   *sess,
	})
}

func (g *Gateway) handleSignup(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		g.writeErrorEnvelope(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := g.auth.Signup(r.Context(), creds.Name, creds.Email, creds.Password)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	g.issueCookie(w, r, sess.Token)
	g.writeJSON(w, http.StatusOK, models.Envelope[models.Session]{
		Status: models.StatusSuccess,
		Data:   *sess,
	})
}

func (g *Gateway) handleLogout(w http.ResponseWriter, r *http.Request) {
	store := session.NewCookieStore(g.cfg.JWTCookieName, g.cfg.CookieMaxAge, r, w)
	if err := store.RemoveToken(); err != nil {
		g.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (g *Gateway) issueCookie(w http.ResponseWriter, r *http.Request, token string) {
	store := session.NewCookieStore(g.cfg.JWTCookieName, g.cfg.CookieMaxAge, r, w)
	_ = store.SetToken(token)
}

func (g *Gateway) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		g.log.Error(context.Background(), "encoding response failed", "error", err)
	}
}

// writeError translates service failures into the API's error envelope,
// preserving the upstream status code and message when known.
func (g *Gateway) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		g.writeErrorEnvelope(w, apiErr.StatusCode, apiErr.Message)
		return
	}
	g.log.Error(r.Context(), "unexpected gateway error", "error", err)
	g.writeErrorEnvelope(w, http.StatusInternalServerError, "An error occurred")
}

func (g *Gateway) writeErrorEnvelope(w http.ResponseWriter, status int, message string) {
	g.writeJSON(w, status, models.ErrorEnvelope{
		Status:  models.StatusError,
		Message: message,
	})
}
