package session

import (
	"net/http"
	"time"
)

// CookieStore keeps the token in a site-wide cookie on an HTTP
// request/response pair. Writes go to the response; reads prefer the value
// written during this exchange and fall back to the request cookie, so a
// Token call immediately after SetToken sees the new value.
//
// A CookieStore with a nil request belongs to no client context (the
// server-side-rendering case); its Token always reports absent instead of
// failing.
type CookieStore struct {
	name   string
	maxAge int

	r *http.Request
	w http.ResponseWriter

	value   string
	written bool
	removed bool
}

// NewCookieStore binds a store to one request/response exchange.
// maxAge is in seconds.
func NewCookieStore(name string, maxAge int, r *http.Request, w http.ResponseWriter) *CookieStore {
	return &CookieStore{name: name, maxAge: maxAge, r: r, w: w}
}

// SetToken writes the cookie scoped to the whole site with the configured
// max-age, SameSite=Lax, and the Secure flag.
func (s *CookieStore) SetToken(token string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   s.maxAge,
		SameSite: http.SameSiteLaxMode,
		Secure:   true,
	})
	s.value = token
	s.written = true
	s.removed = false
	return nil
}

func (s *CookieStore) Token() (string, bool) {
	if s.removed {
		return "", false
	}
	if s.written {
		return s.value, true
	}
	if s.r == nil {
		return "", false
	}
	c, err := s.r.Cookie(s.name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// RemoveToken expires the cookie at the unix epoch, making subsequent
// Token calls report absent.
func (s *CookieStore) RemoveToken() error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
		Secure:   true,
	})
	s.removed = true
	s.written = false
	s.value = ""
	return nil
}

func (s *CookieStore) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}
