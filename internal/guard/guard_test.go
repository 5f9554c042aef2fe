package guard

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-lobo/herogram-go/internal/logging"
)

func TestEvaluate_PublicRoutes(t *testing.T) {
	public := []string{"/login", "/signup", "/forgot-password"}

	for _, p := range public {
		t.Run(p+" with token redirects home", func(t *testing.T) {
			d := Evaluate(p, "tok")
			assert.Equal(t, Redirect, d.Action)
			assert.Equal(t, "/", d.Location)
		})

		t.Run(p+" without token passes", func(t *testing.T) {
			d := Evaluate(p, "")
			assert.Equal(t, Allow, d.Action)
		})
	}
}

func TestEvaluate_ProtectedRoutes(t *testing.T) {
	t.Run("absent token redirects to login with from", func(t *testing.T) {
		d := Evaluate("/files", "")
		assert.Equal(t, Redirect, d.Action)
		assert.Equal(t, "/login?from=%2Ffiles", d.Location)
	})

	t.Run("present token passes", func(t *testing.T) {
		d := Evaluate("/files", "tok")
		assert.Equal(t, Allow, d.Action)
	})
}

func TestEvaluate_APIPaths(t *testing.T) {
	t.Run("token present forwards with bearer", func(t *testing.T) {
		d := Evaluate("/api/v1/files/my-files", "tok")
		assert.Equal(t, AllowWithBearer, d.Action)
	})

	t.Run("token absent redirects to login", func(t *testing.T) {
		d := Evaluate("/api/v1/files/my-files", "")
		assert.Equal(t, Redirect, d.Action)
		assert.Equal(t, "/login?from=%2Fapi%2Fv1%2Ffiles%2Fmy-files", d.Location)
	})
}

func TestEvaluate_IsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, Evaluate("/files", "tok"), Evaluate("/files", "tok"))
	}
}

func TestIntercepts(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"/login", true},
		{"/api/v1/files", true},
		{"/static/app.js", false},
		{"/assets/logo.svg", false},
		{"/public/readme.txt", false},
		{"/favicon.ico", false},
		{"/healthz", false},
		{"/images/pic.PNG", false},
		{"/files/report.pdf", true},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, Intercepts(tc.path))
		})
	}
}

// ---- Middleware over a real router ----

func newGuardedRouter(t *testing.T) *mux.Router {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := mux.NewRouter()
	r.Use(Middleware("jwt", log))
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Echo the auth header so tests can observe injection.
		w.Header().Set("X-Echo-Authorization", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func do(t *testing.T, router *mux.Router, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMiddleware_RedirectsWithoutCookie(t *testing.T) {
	router := newGuardedRouter(t)

	w := do(t, router, "/files", "")
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login?from=%2Ffiles", w.Header().Get("Location"))
}

func TestMiddleware_InjectsBearerOnAPIPaths(t *testing.T) {
	router := newGuardedRouter(t)

	w := do(t, router, "/api/v1/files/my-files", "tok")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer tok", w.Header().Get("X-Echo-Authorization"))
}

func TestMiddleware_SkipsExcludedPaths(t *testing.T) {
	router := newGuardedRouter(t)

	// No cookie, but excluded from interception: passes straight through.
	w := do(t, router, "/favicon.ico", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMiddleware_BouncesAuthenticatedOffPublicRoutes(t *testing.T) {
	router := newGuardedRouter(t)

	w := do(t, router, "/login", "tok")
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}
