// Package models defines the wire-level data types exchanged with the
// file-management API, plus a few presentation helpers the CLI uses.
package models

// User is the server-side identity record. The client never mutates it;
// it is a read-only projection of server state, obtained either from the
// /auth/me endpoint or from an unverified token decode.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the result of a successful login or signup: the issued bearer
// token plus the identity it belongs to. Persisting the token is the
// caller's job.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
