package cli

import (
	"context"
	"fmt"

	"github.com/phrazzld/flashdeck/internal/service/auth"
	"github.com/phrazzld/flashdeck/internal/session"
)

func (a *App) register(ctx context.Context) error {
	var in auth.RegisterInput
	var err error

	if in.Name, err = a.prompt("Name"); err != nil {
		return err
	}
	if in.Email, err = a.prompt("Email"); err != nil {
		return err
	}
	if in.Password, err = a.promptPassword("Password"); err != nil {
		return err
	}
	if in.ConfirmPassword, err = a.promptPassword("Confirm password"); err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s <%s>. Run 'flashcards login' to sign in.\n", user.Name, user.Email)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.session.Dispatch(ctx, session.SetUser{User: user})

	if users, err := a.auth.Users(ctx); err != nil {
		a.logger.WarnContext(ctx, "failed to load registered users", "error", err)
	} else {
		a.session.Dispatch(ctx, session.SetUsers{Users: users})
	}

	fmt.Fprintf(a.out, "Logged in as %s <%s>.\n", user.Name, user.Email)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.session.Dispatch(ctx, session.Logout{})
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) whoami(ctx context.Context) error {
	state := a.session.State()
	if !state.LoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", state.User.Name, state.User.Email)
	return nil
}
