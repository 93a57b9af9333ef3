// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides durable key-value client storage backed by a
local SQLite file (modernc.org/sqlite, pure Go - no cgo).

This is the client-side analog of browser localStorage: a tiny
string-keyed table that survives restarts. The session layer keeps its
token and serialized user record here.

# Usage

	kv, err := store.Open(cfg.StatePath)
	if err != nil {
		// ...
	}
	defer kv.Close()

	kv.Set("token", accessToken)
	token, err := kv.Get("token") // store.ErrNotFound when absent
	kv.Delete("token")
	kv.Clear()

# Schema

One table, created on Open with IF NOT EXISTS:

	CREATE TABLE kv (
	    key TEXT PRIMARY KEY,
	    value TEXT NOT NULL
	);
*/
package store
