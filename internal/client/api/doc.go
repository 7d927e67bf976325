// Package api is the single chokepoint for HTTP calls to the UniConnect
// backend.
//
// # Overview
//
// The package provides:
//  1. Client: builds requests against one base URL fixed at startup, attaches
//     the bearer credential from a CredentialSource, serializes JSON bodies
//     and decodes JSON responses.
//  2. Typed endpoint groups (AuthAPI, EventAPI, TeamAPI, UserAPI): one method
//     per backend operation, returning decoded resource shapes from the
//     models package.
//  3. APIError: the one normalized failure type. Callers pattern-match on it
//     with AsAPIError / errors.As; StatusCode 0 means no response was
//     received.
//
// # Error Handling
//
// The client never leaks raw transport errors: network failures, non-2xx
// statuses and malformed JSON all come back as *APIError. A 401 response
// additionally invalidates the session through the CredentialSource before
// the error is returned.
//
// Concurrency & Contexts
//
// Client is safe for concurrent use. All operations accept context.Context
// and honor cancellation/timeouts. No retries are performed here; retry
// policy belongs to the caller.
package api
