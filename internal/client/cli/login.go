package cli

import (
	"context"
	"fmt"
)

// Login stamps an email identity into local storage. There is no
// verification behind it: the password prompt exists only to mirror the
// usual form shape and its value is discarded.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if _, err := GetPassword(a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	session, err := a.sessionService.Login(ctx, email)
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return err
	}

	a.session = session
	fmt.Fprintf(a.out, "Logged in as %s\n", session.Email)
	return nil
}

// Signup is the same stamp operation as Login; the distinction exists only
// in the command surface.
func (a *App) Signup(ctx context.Context) error {
	return a.Login(ctx)
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sessionService.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	a.session = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Please login first")
	return false
}
