// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sessions persists per-browser survey state.

Each session owns two string entries, the encoded ResponseSet and the
current position, kept in a Store keyed by a signed session cookie.

	sid := sessions.FromRequest(w, r, cfg.SessionSecret)
	state := sessions.Restore(ctx, store, sid, cat, q, hasQ)
	...
	err := sessions.Persist(ctx, store, sid, state)

Backends:

  - MemoryStore: process-local, the default
  - RedisStore: shared across instances, entries expire after inactivity

Restore never fails. Unreadable entries are logged and replaced by
defaults, and positions are clamped to the catalog.
*/
package sessions
