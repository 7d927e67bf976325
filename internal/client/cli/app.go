package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/uniconnect/uniconnect-cli/internal/client/api"
	"github.com/uniconnect/uniconnect-cli/internal/client/config"
	"github.com/uniconnect/uniconnect-cli/internal/client/repositories/localstate"
	"github.com/uniconnect/uniconnect-cli/internal/client/session"
	"github.com/uniconnect/uniconnect-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires configuration, the session store and the API endpoint groups
// behind the interactive command surface.
type App struct {
	config  *config.Config
	session *session.Store
	auth    *api.AuthAPI
	events  *api.EventAPI
	teams   *api.TeamAPI
	users   *api.UserAPI
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localstate.Open(ctx, cfg.LocalDBPath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	store := session.NewStore(db, log)
	store.Initialize(ctx)

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, store, log)

	return &App{
		config:  cfg,
		session: store,
		auth:    api.NewAuthAPI(client),
		events:  api.NewEventAPI(client),
		teams:   api.NewTeamAPI(client),
		users:   api.NewUserAPI(client),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status is shown in the REPL prompt.
func (a *App) status() string {
	if u, ok := a.session.CurrentUser(); ok {
		return u.Email
	}
	return "anonymous"
}

func (a *App) Run(ctx context.Context) {
	if err := a.WaitForBackend(ctx); err != nil {
		a.log.Warn(ctx, "backend unreachable, commands may fail", "error", err)
	}

	fmt.Fprintln(a.out, "UniConnect CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// WaitForBackend probes the public events endpoint with fibonacci backoff
// until the backend answers with anything that is not a transport failure.
func (a *App) WaitForBackend(ctx context.Context) error {
	b := retry.WithMaxRetries(5, retry.NewFibonacci(500*time.Millisecond))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		_, err := a.events.ListEvents(ctx)
		if err == nil {
			return nil
		}
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.IsTransport() {
			return retry.RetryableError(err)
		}
		// The backend answered; an HTTP-level error still means it is up.
		return nil
	})
}

// printErr renders a normalized API error for the user; any other error is
// shown verbatim.
func (a *App) printErr(err error) {
	if apiErr, ok := api.AsAPIError(err); ok {
		if apiErr.IsTransport() {
			fmt.Fprintf(a.out, "Network error: %s\n", apiErr.Message)
		} else {
			fmt.Fprintf(a.out, "Error: %s\n", apiErr.Message)
		}
		return
	}
	fmt.Fprintf(a.out, "Error: %v\n", err)
}
