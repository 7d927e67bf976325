package cli

import (
	"context"
	"fmt"

	"github.com/uniconnect/uniconnect-cli/internal/client/api"
)

func (a *App) Signup(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
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
	fmt.Fprint(a.out, "Confirm ")
	confirm, err := GetPassword(a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	resp, err := a.auth.Signup(ctx, api.SignupRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}
