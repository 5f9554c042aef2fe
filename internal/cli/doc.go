// Package cli provides the interactive file-management command-line
// client.
//
// It wires configuration, the token store, the API services, and a REPL
// covering every operation the web front-end offered:
//
//   - signup / login / logout / whoami
//   - list files
//   - upload one or more files concurrently
//   - download a file
//   - create expiring share links and inspect their view statistics
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// The bearer token persists across sessions in a file under the user's
// config directory, so a logged-in user stays logged in until the token
// expires or "logout" removes it.
package cli
