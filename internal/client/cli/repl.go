package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Activate(ctx context.Context) error
	Events(ctx context.Context) error
	Event(ctx context.Context, id string) error
	RegisterTeam(ctx context.Context, eventID, teamID string) error
	Teams(ctx context.Context) error
	CreateTeam(ctx context.Context) error
	UpdateTeam(ctx context.Context, id string) error
	DeleteTeam(ctx context.Context, id string) error
	Whoami(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the UniConnect CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands that operate on the user's session or teams are gated on
// isLoggedIn, mirroring the route guards of the web front-end. Any errors
// returned by command handlers are ignored here; handlers print their own
// errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("uniconnect> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: events, event <id>, register <eventID> <teamID>, teams, createteam, updateteam <id>, deleteteam <id>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, forgot, reset, activate, events, event <id>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "activate":
			_ = a.Activate(ctx)

		case "events":
			_ = a.Events(ctx)

		case "event":
			if len(args) == 0 {
				printlnFn("Usage: event <id>")
				continue
			}
			_ = a.Event(ctx, args[0])

		case "register":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			if len(args) < 2 {
				printlnFn("Usage: register <eventID> <teamID>")
				continue
			}
			_ = a.RegisterTeam(ctx, args[0], args[1])

		case "teams":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			_ = a.Teams(ctx)

		case "createteam":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			_ = a.CreateTeam(ctx)

		case "updateteam":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: updateteam <id>")
				continue
			}
			_ = a.UpdateTeam(ctx, args[0])

		case "deleteteam":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: deleteteam <id>")
				continue
			}
			_ = a.DeleteTeam(ctx, args[0])

		case "whoami":
			if !a.isLoggedIn() {
				printlnFn("Not logged in")
				continue
			}
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
