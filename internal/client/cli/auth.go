package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/finledger/finledger/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email, and password and creates an
// account. No session is established; the user logs in afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
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

	if err := a.session.Register(ctx, username, email, password); err != nil {
		if errors.Is(err, session.ErrResolving) {
			fmt.Println("Still checking a stored session, try again in a moment")
			return nil
		}
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Registered! Now log in.")
	return nil
}

// Login prompts for credentials and establishes a session. On success the
// token is persisted for the next run.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, session.ErrResolving) {
			fmt.Println("Still checking a stored session, try again in a moment")
			return nil
		}
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Logged in as %s\n", user.Username)
	return nil
}

// Logout drops the session and the persisted token. Purely local.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}
