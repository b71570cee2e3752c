// Package client contains the transport layer of the expense tracker client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     auth, categories, expenses and monthly reports.
//  2. A concrete REST implementation (see HTTPClient) that encodes JSON and
//     form bodies, tags every request with an X-Request-ID, and maps failures
//     to the error types below.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// A request that never produced an HTTP response, or whose 2xx body could
// not be decoded, fails with an error matching ErrUnavailable. A non-2xx
// response fails with *APIError, carrying the server's "message" when the
// body had one. Callers match with errors.Is / errors.As.
//
// # Contexts
//
// All operations accept context.Context. No timeout is applied unless the
// client was built with WithTimeout.
package client
