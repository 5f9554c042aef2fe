package session

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/e-lobo/herogram-go/internal/models"
)

// ParseJWT decodes the payload segment of a bearer token and maps it to a
// User for display purposes.
//
// The signature is NOT verified: this is an unverified, display-only
// decode, never an authorization check. Any security decision must rely on
// the server's own verification. The token must carry the full three
// dot-separated segments; a bare header.payload pair is rejected even if
// the payload alone would decode. Returns false on any malformed input
// (missing segments, bad base64url, non-JSON payload) and never panics.
func ParseJWT(token string) (*models.User, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}

	u := &models.User{}
	if v, ok := claims["id"].(string); ok {
		u.ID = v
	}
	if v, ok := claims["email"].(string); ok {
		u.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		u.Name = v
	}
	return u, true
}
