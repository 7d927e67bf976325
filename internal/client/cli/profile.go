package cli

import (
	"context"
	"fmt"
)

func (a *App) Whoami(ctx context.Context) error {
	user, err := a.users.Me(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "%s <%s>\n", user.FullName, user.Email)
	if user.USN != "" {
		fmt.Fprintf(a.out, "USN:        %s\n", user.USN)
	}
	if user.Department != "" {
		fmt.Fprintf(a.out, "Department: %s\n", user.Department)
	}
	if user.Semester != 0 {
		fmt.Fprintf(a.out, "Semester:   %d\n", user.Semester)
	}
	return nil
}
