package cli

import (
	"context"
	"fmt"
)

func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	resp, err := a.auth.ForgotPassword(ctx, email)
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, resp.Message)
	if resp.DevCode != "" {
		// Development-mode backends hand the one-time code back directly.
		fmt.Fprintf(a.out, "One-time code: %s\n", resp.DevCode)
	}
	return nil
}

func (a *App) ResetPassword(ctx context.Context) error {
	token, err := GetSimpleText(a.reader, "Enter reset token", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprint(a.out, "New ")
	password, err := GetPassword(a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	resp, err := a.auth.ResetPassword(ctx, token, password)
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}

func (a *App) Activate(ctx context.Context) error {
	token, err := GetSimpleText(a.reader, "Enter activation token", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	resp, err := a.auth.Activate(ctx, token)
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}
