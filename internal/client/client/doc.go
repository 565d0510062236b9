// Package client talks to the GoBarber REST API.
//
// # Overview
//
// The package provides:
//  1. The transport-agnostic API contract (see Client): sessions, sign-up,
//     password recovery/reset, profile and avatar updates.
//  2. HTTPClient, the net/http implementation. It attaches the current
//     bearer token to every request through a RoundTripper and maps
//     failures to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): an SQLite
//     database with embedded goose migrations, used as durable storage by
//     the session store.
//
// # Error Handling
//
// Transport failures match ErrUnavailable. Non-2xx responses are returned as
// *APIError, which carries the server's message and unwraps to
// ErrBadRequest, ErrUnauthorized, ErrServer or ErrUnexpectedStatus, so
// callers can use errors.Is or errors.As.
package client
