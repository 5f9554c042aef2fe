// Package session manages the client-side bearer-token slot.
//
// The token is opaque to this package: it is issued by the server on login
// or signup, attached to every authenticated API call, and destroyed on
// logout or expiry. Absence of a token means "unauthenticated". Two stores
// exist: CookieStore binds the slot to an HTTP request/response pair (the
// gateway), FileStore persists it on disk (the CLI).
package session

// Store is the single token slot read before each authenticated request.
type Store interface {
	// SetToken persists the token; subsequent Token calls see it until
	// expiry or explicit removal.
	SetToken(token string) error

	// Token returns the current token, or false when none is stored.
	Token() (string, bool)

	// RemoveToken destroys the stored token immediately.
	RemoveToken() error

	// IsAuthenticated reports whether a token is present. This is a
	// presence check only, not a validity check.
	IsAuthenticated() bool
}
