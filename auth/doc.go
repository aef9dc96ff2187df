// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session signing and admin key checks.

# Session IDs

Each browser gets a random UUID as its session identifier:

	sid := auth.NewSessionID()

# Signed Values

Session cookies carry the ID plus an HMAC-SHA256 so a client cannot pick
another session's ID:

	cookie := auth.Sign(sid, secret)
	sid, err := auth.Verify(cookie, secret)

The MAC is URL-safe base64 encoded without padding.

# Admin Keys

The admin views are guarded by a single configured key:

	err := auth.ValidateAdminKey(presented, cfg.AdminKey)

Comparison is constant time. An empty configured key never validates.
*/
package auth
