package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-lobo/herogram-go/internal/api"
	"github.com/e-lobo/herogram-go/internal/config"
	"github.com/e-lobo/herogram-go/internal/logging"
	"github.com/e-lobo/herogram-go/internal/models"
)

// fakeAuth implements services.AuthService for handler tests.
type fakeAuth struct {
	session *models.Session
	err     error

	lastEmail string
	lastName  string
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.Session, error) {
	f.lastEmail = email
	return f.session, f.err
}

func (f *fakeAuth) Signup(ctx context.Context, name, email, password string) (*models.Session, error) {
	f.lastName = name
	f.lastEmail = email
	return f.session, f.err
}

func testConfig(apiURL string) *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	return cfg
}

func newGateway(t *testing.T, cfg *config.Config, auth *fakeAuth) *Gateway {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	g, err := New(cfg, auth, log)
	require.NoError(t, err)
	return g
}

func TestGateway_LoginSetsCookie(t *testing.T) {
	auth := &fakeAuth{session: &models.Session{
		User:  models.User{ID: "1", Email: "a@b.com", Name: "A"},
		Token: "issued-token",
	}}
	g := newGateway(t, testConfig(""), auth)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@b.com","password":"pw"}`))
	w := httptest.NewRecorder()
	g.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@b.com", auth.lastEmail)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "jwt", cookies[0].Name)
	assert.Equal(t, "issued-token", cookies[0].Value)
	assert.Equal(t, 86400, cookies[0].MaxAge)

	var env models.Envelope[models.Session]
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	assert.Equal(t, models.StatusSuccess, env.Status)
	assert.Equal(t, "issued-token", env.Data.Token)
}

func TestGateway_LoginFailurePreservesUpstreamStatus(t *testing.T) {
	auth := &fakeAuth{err: &api.Error{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}}
	g := newGateway(t, testConfig(""), auth)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
	w := httptest.NewRecorder()
	g.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var env models.ErrorEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	assert.Equal(t, models.StatusError, env.Status)
	assert.Equal(t, "Invalid credentials", env.Message)
}

func TestGateway_LoginRejectsBadBody(t *testing.T) {
	g := newGateway(t, testConfig(""), &fakeAuth{})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{"))
	w := httptest.NewRecorder()
	g.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGateway_LogoutExpiresCookie(t *testing.T) {
	g := newGateway(t, testConfig(""), &fakeAuth{})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "tok"})
	w := httptest.NewRecorder()
	g.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, int64(0), cookies[0].Expires.Unix())
}

func TestGateway_ProxyInjectsBearer(t *testing.T) {
	var gotAuth, gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":"success","data":[]}`))
	}))
	defer backend.Close()

	g := newGateway(t, testConfig(backend.URL+"/api/v1"), &fakeAuth{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/files/my-files", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "tok"})
	w := httptest.NewRecorder()
	g.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "/api/v1/files/my-files", gotPath)
}

func TestGateway_APIWithoutTokenRedirectsToLogin(t *testing.T) {
	g := newGateway(t, testConfig(""), &fakeAuth{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/files/my-files", nil)
	w := httptest.NewRecorder()
	g.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login?from=")
}

func TestGateway_HealthzBypassesGuard(t *testing.T) {
	g := newGateway(t, testConfig(""), &fakeAuth{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	g.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
