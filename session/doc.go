// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session manages the client's authentication state.

A Store mirrors three things that must stay in sync: the durable
key-value storage (keys "token" and "user"), the in-memory session
snapshot, and the bearer credential installed on the API client.

# Lifecycle

	sess := session.New(kv, client)
	if err := sess.Restore(); err != nil { ... }

	cur, err := sess.Current() // ErrNotRestored before Restore
	if cur.IsAuthenticated { ... }

	err = sess.Login(ctx, email, password) // ErrAuthFailed on rejection
	err = sess.Logout()                    // idempotent

Restore trusts whatever token is on disk without re-validating it
against the server; a stale or revoked token only surfaces when a
later authenticated call fails. Nothing here logs the user out
automatically on that failure.

The Store is passed explicitly to its consumers. Current fails loudly
(ErrNotRestored) when read before Restore, instead of quietly
reporting an unauthenticated session that merely was not loaded yet.
*/
package session
