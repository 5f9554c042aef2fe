// Package gateway hosts the edge surface in front of the backend API: the
// route guard runs on every matched request, login/signup/logout manage
// the token cookie, and /api/ traffic is reverse-proxied upstream with the
// bearer header attached. The gateway owns no durable state.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/gorilla/mux"

	"github.com/e-lobo/herogram-go/internal/config"
	"github.com/e-lobo/herogram-go/internal/guard"
	"github.com/e-lobo/herogram-go/internal/logging"
	"github.com/e-lobo/herogram-go/internal/services"
)

type Gateway struct {
	cfg   *config.Config
	auth  services.AuthService
	proxy http.Handler
	log   logging.Logger
}

// New builds a gateway proxying API traffic to the host of the configured
// API base URL.
func New(cfg *config.Config, auth services.AuthService, log logging.Logger) (*Gateway, error) {
	upstream, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}

	proxy := httputil.NewSingleHostReverseProxy(&url.URL{
		Scheme: upstream.Scheme,
		Host:   upstream.Host,
	})

	return &Gateway{cfg: cfg, auth: auth, proxy: proxy, log: log}, nil
}

// Router wires the guard middleware and the gateway's routes.
func (g *Gateway) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(guard.Middleware(g.cfg.JWTCookieName, g.log))

	r.HandleFunc("/healthz", g.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/login", g.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/signup", g.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/logout", g.handleLogout).Methods(http.MethodPost)
	r.PathPrefix("/api/").Handler(g.proxy)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (g *Gateway) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    g.cfg.ListenAddr,
		Handler: g.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		g.log.Info(ctx, "gateway listening", "addr", g.cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
