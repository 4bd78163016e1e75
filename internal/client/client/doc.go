// Package client is the transport layer of the UdharoGuru client.
//
// # Overview
//
//  1. Client: the backend API contract used by the services (auth, business
//     onboarding, chat).
//  2. HTTPClient: the REST implementation. Every call carries
//     "Authorization: Bearer <access>" when an access token is stored and a
//     fresh X-Request-ID.
//  3. Storage: the local SQLite database (InitDatabase, RunMigrations) that
//     backs the token store.
//
// # Token refresh
//
// A 401 starts the refresh protocol. At most one POST auth/refresh/ is in
// flight per HTTPClient; other calls that hit 401 meanwhile wait in a FIFO
// queue and are resent once with the new access token. A call that is still
// unauthorized after its resend, a 401 without a stored refresh token, or a
// failed refresh clears the token store, which notifies its observers.
//
// # Errors
//
// ErrUnavailable wraps transport failures (token store untouched).
// ErrUnauthorized marks a terminal session failure. Any other non-2xx
// response is an *APIError carrying the status and the decoded JSON body.
package client
