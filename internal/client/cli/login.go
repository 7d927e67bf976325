package cli

import (
	"context"
	"fmt"

	"github.com/uniconnect/uniconnect-cli/internal/client/api"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	resp, err := a.auth.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.printErr(err)
		return err
	}

	if err := a.session.Login(ctx, &resp.User, resp.Token); err != nil {
		a.printErr(err)
		return err
	}

	if resp.Message != "" {
		fmt.Fprintln(a.out, resp.Message)
	} else {
		fmt.Fprintf(a.out, "Logged in as %s\n", resp.User.Email)
	}
	return nil
}
