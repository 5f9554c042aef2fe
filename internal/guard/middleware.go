package guard

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/e-lobo/herogram-go/internal/common"
	"github.com/e-lobo/herogram-go/internal/logging"
)

// Middleware applies Evaluate to every matched request. The token is read
// from the named cookie; redirects use 307 so method and body survive.
func Middleware(cookieName string, log logging.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Intercepts(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			var token string
			if c, err := r.Cookie(cookieName); err == nil {
				token = c.Value
			}

			d := Evaluate(r.URL.Path, token)
			switch d.Action {
			case Redirect:
				log.Debug(r.Context(), "guard redirect", "path", r.URL.Path, "to", d.Location)
				http.Redirect(w, r, d.Location, http.StatusTemporaryRedirect)
			case AllowWithBearer:
				r.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
				next.ServeHTTP(w, r)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
