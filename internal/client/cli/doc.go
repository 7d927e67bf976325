// Package cli provides the interactive UniConnect command-line client.
//
// It wires configuration, the durable session store and the API endpoint
// groups into an interactive REPL. Typical flow: restore the persisted
// session, probe the backend, then execute user commands.
//
// Key features:
//   - Login / Signup / Logout with a session that survives restarts
//   - Forgot / reset password and account activation
//   - Event listing, detail and team registration
//   - Team CRUD scoped to the current user
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, WaitForBackend, and runREPL for details.
package cli
