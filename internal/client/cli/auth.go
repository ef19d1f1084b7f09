package cli

import (
	"context"
	"os"

	"github.com/konarr/konarr-go/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password (entered twice) and creates
// an account. On success the server store navigates to the login view.
//
// The password byte slices are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	return a.server.Register(ctx, username, string(password), string(confirm))
}

// Login prompts for credentials and authenticates. On success the server
// store refreshes the session info and navigates home.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.server.Login(ctx, username, string(password)); err != nil {
		return err
	}
	printlnFn("Logged in.")
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.server.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the authenticated user.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.users.Whoami(ctx)
	if err != nil {
		return err
	}
	printlnFn(user.Username, "("+user.Role+")")
	return nil
}

// ChangePassword prompts for the current and new password and updates the
// account.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	confirm, err := getPassword(os.Stdout, "Confirm new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.users.ChangePassword(ctx, string(current), string(next), string(confirm)); err != nil {
		return err
	}
	printlnFn("Password changed.")
	return nil
}
