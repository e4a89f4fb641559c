// Package client contains client-side building blocks for LangGPT.
//
// # Overview
//
// The package provides:
//  1. APIClient, a thin HTTP/JSON client for the LangGPT server: Register,
//     Login, Me, Translate and History. The bearer token and the caller's own
//     model key are passed per call; the client keeps no session state.
//  2. Local persistence bootstrap (InitDatabase, RunMigrations) for the CLI,
//     opening an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Non-2xx responses come back as *APIError carrying the status and the
// server's detail message. errors.Is maps them onto ErrUnauthorized,
// ErrRateLimited and ErrBadRequest; transport failures match ErrUnavailable.
package client
