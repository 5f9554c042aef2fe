package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/e-lobo/herogram-go/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for name, email, and password, creates the account, and
// persists the issued token so the new user is logged in right away.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	sess, err := a.auth.Signup(ctx, name, email, password)
	if err != nil {
		printlnFn(fmt.Sprintf("Signup failed: %s", err.Error()))
		return err
	}

	if err := a.store.SetToken(sess.Token); err != nil {
		return err
	}
	a.user = &sess.User

	printlnFn("Success!")
	return nil
}

// Login prompts for credentials, authenticates, and persists the issued
// token via the token store.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, email, password)
	if err != nil {
		printlnFn(fmt.Sprintf("Login failed: %s", err.Error()))
		return err
	}

	if err := a.store.SetToken(sess.Token); err != nil {
		return err
	}
	a.user = &sess.User

	printlnFn(fmt.Sprintf("Logged in as %s", sess.User.Email))
	return nil
}

// Logout destroys the stored token. Server-side state is untouched; the
// token simply ages out there.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.RemoveToken(); err != nil {
		return err
	}
	a.user = nil
	printlnFn("Logged out")
	return nil
}

// WhoAmI shows the current identity. It asks the server first and falls
// back to the unverified token decode when the server is unreachable.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.files.CurrentUser(ctx)
	if err != nil {
		if token, ok := a.store.Token(); ok {
			if decoded, ok := session.ParseJWT(token); ok {
				printlnFn(fmt.Sprintf("%s <%s> (from cached token, unverified)", decoded.Name, decoded.Email))
				return nil
			}
		}
		printlnFn(fmt.Sprintf("Not available: %s", err.Error()))
		return err
	}

	printlnFn(fmt.Sprintf("%s <%s>", u.Name, u.Email))
	a.user = u
	return nil
}
