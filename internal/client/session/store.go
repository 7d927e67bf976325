// Package session owns the client's authentication state: which user, if any,
// is currently logged in, and the bearer credential issued for them. The state
// survives process restarts through two slots in the local key/value store,
// written and cleared together so a partial record is never trusted.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"

	"github.com/uniconnect/uniconnect-cli/internal/client/models"
	"github.com/uniconnect/uniconnect-cli/internal/client/repositories/localstate"
	"github.com/uniconnect/uniconnect-cli/internal/dbx"
	"github.com/uniconnect/uniconnect-cli/internal/logging"
)

// State describes where the store is in its lifecycle.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Persisted slot names. These are the durable on-disk layout and must stay
// stable across releases for session continuity.
const (
	userSlot  = "session_user"
	tokenSlot = "session_token"
)

// ErrIncompleteLogin is returned by Login when the user or the credential is
// missing. The two are only ever stored together.
var ErrIncompleteLogin = errors.New("session: user and credential are both required")

// Store is the single source of truth for the current session. All mutations
// go through Initialize, Login, Logout and Invalidate; reads are O(1) and
// side-effect-free. Safe for concurrent use.
type Store struct {
	db  *sql.DB
	log logging.Logger

	mu    sync.RWMutex
	user  *models.User
	token string
	state State

	subMu sync.Mutex
	subs  []func(State)
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log, state: StateUninitialized}
}

// Initialize restores the session from the persisted slots. Called exactly
// once at startup. A missing, partial or corrupt record results in an
// anonymous session and a purge of whatever was left behind; restore problems
// are logged, never surfaced to the caller.
func (s *Store) Initialize(ctx context.Context) {
	s.setState(StateLoading)

	repo := localstate.NewSQLiteRepository(s.db)

	rawUser, userErr := repo.Get(ctx, userSlot)
	rawToken, tokenErr := repo.Get(ctx, tokenSlot)

	if userErr != nil || tokenErr != nil {
		s.log.Warn(ctx, "could not read persisted session", "user_err", userErr, "token_err", tokenErr)
		s.abandonPersisted(ctx)
		return
	}
	if len(rawUser) == 0 || len(rawToken) == 0 {
		// Either nothing was ever stored or only one slot survived.
		s.abandonPersisted(ctx)
		return
	}

	var u models.User
	if err := json.Unmarshal(rawUser, &u); err != nil {
		s.log.Warn(ctx, "persisted session is corrupt, discarding", "error", err)
		s.abandonPersisted(ctx)
		return
	}

	s.mu.Lock()
	s.user = &u
	s.token = string(rawToken)
	s.state = StateAuthenticated
	s.mu.Unlock()
	s.notify(StateAuthenticated)

	s.log.Info(ctx, "session restored", "email", u.Email)
}

// abandonPersisted clears both slots and settles into the anonymous state.
func (s *Store) abandonPersisted(ctx context.Context) {
	if err := s.purge(ctx); err != nil {
		s.log.Warn(ctx, "could not purge persisted session", "error", err)
	}
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.state = StateAnonymous
	s.mu.Unlock()
	s.notify(StateAnonymous)
}

// Login installs a new session and persists it. The in-memory session is set
// first and stays set even if the write to local storage fails; such failures
// are logged as warnings and do not roll the login back.
func (s *Store) Login(ctx context.Context, user *models.User, token string) error {
	if user == nil || token == "" {
		return ErrIncompleteLogin
	}

	u := *user // replacement by value, stale references stay untouched

	s.mu.Lock()
	s.user = &u
	s.token = token
	s.state = StateAuthenticated
	s.mu.Unlock()
	s.notify(StateAuthenticated)

	raw, err := json.Marshal(&u)
	if err == nil {
		err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := localstate.NewSQLiteRepository(tx)
			if err := repo.Set(ctx, userSlot, raw); err != nil {
				return err
			}
			return repo.Set(ctx, tokenSlot, []byte(token))
		})
	}
	if err != nil {
		s.log.Warn(ctx, "session not persisted, will be lost on restart", "error", err)
	}

	return nil
}

// Logout drops the in-memory session and purges both persisted slots.
// Idempotent: logging out while anonymous still clears the slots.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.state = StateAnonymous
	s.mu.Unlock()

	if err := s.purge(ctx); err != nil {
		s.log.Warn(ctx, "could not purge persisted session", "error", err)
	}
	s.notify(StateAnonymous)
}

// Invalidate is the hook the API layer calls when the backend rejects the
// credential. It behaves like Logout.
func (s *Store) Invalidate(ctx context.Context) {
	s.log.Warn(ctx, "credential rejected by backend, logging out")
	s.Logout(ctx)
}

func (s *Store) purge(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstate.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, userSlot); err != nil {
			return err
		}
		return repo.Delete(ctx, tokenSlot)
	})
}

// IsAuthenticated reports whether a user is currently set.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// CurrentUser returns a copy of the logged-in user, or ok=false when
// anonymous.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Token returns the current bearer credential, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// State returns the store's lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to run after every state transition. Callbacks run
// synchronously on the mutating goroutine and must not block.
func (s *Store) Subscribe(fn func(State)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	s.notify(st)
}

func (s *Store) notify(st State) {
	s.subMu.Lock()
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(st)
	}
}
