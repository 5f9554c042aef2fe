// Package guard implements the edge routing/auth decision applied to every
// matched request before it reaches application logic.
//
// The decision itself is a pure function of (path, token): no I/O, no
// network calls, no state. Middleware binds it to real HTTP traffic.
package guard

import (
	"net/url"
	"path"
	"strings"
)

// Action is what the guard decided to do with a request.
type Action int

const (
	// Allow forwards the request unmodified.
	Allow Action = iota
	// Redirect discards the request and sends the client elsewhere.
	Redirect
	// AllowWithBearer forwards the request with an added
	// "Authorization: Bearer <token>" header.
	AllowWithBearer
)

// Decision is the guard's verdict for one request.
type Decision struct {
	Action   Action
	Location string // redirect target, set only for Redirect
}

// publicRoutes need no authentication; an authenticated user visiting one
// is bounced home instead.
var publicRoutes = map[string]struct{}{
	"/login":           {},
	"/signup":          {},
	"/forgot-password": {},
}

// apiPrefix marks requests that are forwarded upstream with the bearer
// header attached.
const apiPrefix = "/api/"

// Evaluate decides what happens to a request for the given path when the
// client presented the given token ("" means unauthenticated).
//
// Rules, in order: unauthenticated access to a protected path redirects to
// /login carrying the requested path in a "from" query parameter;
// authenticated access to a public path redirects home; API paths are
// forwarded with the bearer header (omitted entirely when no token
// exists); everything else passes through unmodified.
func Evaluate(path, token string) Decision {
	_, public := publicRoutes[path]

	if token == "" && !public {
		v := url.Values{}
		v.Set("from", path)
		return Decision{Action: Redirect, Location: "/login?" + v.Encode()}
	}

	if token != "" && public {
		return Decision{Action: Redirect, Location: "/"}
	}

	if strings.HasPrefix(path, apiPrefix) && token != "" {
		return Decision{Action: AllowWithBearer}
	}

	return Decision{Action: Allow}
}

// skippedExtensions are image types the matcher never intercepts.
var skippedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".svg":  {},
	".webp": {},
	".ico":  {},
}

// Intercepts reports whether the guard applies to reqPath at all. Static
// assets, images, the favicon, and the health endpoint are excluded.
func Intercepts(reqPath string) bool {
	switch {
	case strings.HasPrefix(reqPath, "/static/"),
		strings.HasPrefix(reqPath, "/assets/"),
		strings.HasPrefix(reqPath, "/public/"),
		reqPath == "/favicon.ico",
		reqPath == "/healthz":
		return false
	}

	if _, ok := skippedExtensions[strings.ToLower(path.Ext(reqPath))]; ok {
		return false
	}

	return true
}
