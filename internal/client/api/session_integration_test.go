package api

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniconnect/uniconnect-cli/internal/client/models"
	"github.com/uniconnect/uniconnect-cli/internal/client/session"

	_ "modernc.org/sqlite"
)

func setupSessionDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE local_state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

// A 401 from the backend must flip the session to anonymous before the caller
// ever observes the error.
func Test401_ClearsRealSessionStoreBeforeCallerSeesError(t *testing.T) {
	ctx := context.Background()

	store := session.NewStore(setupSessionDB(t), quietLogger())
	store.Initialize(ctx)

	user := &models.User{ID: "u1", FullName: "Asha Rao", Email: "asha@example.edu"}
	require.NoError(t, store.Login(ctx, user, "stale-token"))
	require.True(t, store.IsAuthenticated())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "invalid or expired token"}`))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, 5*time.Second, store, quietLogger())

	err := NewTeamAPI(c).DeleteTeam(ctx, "t1")
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsAuthRejected())

	// the caller observes the rejection only after the session was cleared
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
}

// The credential carried by a request is the one read at construction time.
func TestRequestsCarryCredentialCurrentAtConstruction(t *testing.T) {
	ctx := context.Background()

	store := session.NewStore(setupSessionDB(t), quietLogger())
	store.Initialize(ctx)
	require.NoError(t, store.Login(ctx, &models.User{ID: "u1", FullName: "A", Email: "a@x.edu"}, "abc123"))

	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}, &fakeCreds{token: store.Token()})

	_, err := NewTeamAPI(c).ListTeams(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}
