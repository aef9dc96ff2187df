// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/style-funnel/auth"
)

// AdminKeyHeader carries the admin key on API calls
const AdminKeyHeader = "X-Admin-Key"

// AdminCookieName is the signed cookie issued by the admin login form
const AdminCookieName = "funnel_admin"

// AdminSessionTTL bounds how long an admin cookie is honoured
const AdminSessionTTL = 8 * time.Hour

const adminCookiePath = "/admin"

// RequireAdminKey guards JSON routes with the X-Admin-Key header. An empty
// expected key leaves the route open.
func RequireAdminKey(expected string, next http.HandlerFunc) http.HandlerFunc {
	if expected == "" {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if err := auth.ValidateAdminKey(r.Header.Get(AdminKeyHeader), expected); err != nil {
			slog.Warn("admin access denied", "path", r.URL.Path, "ip", GetClientIP(r))
			ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
			return
		}
		next(w, r)
	}
}

// RequireAdminSession guards HTML pages. The X-Admin-Key header or an
// unexpired admin cookie lets the request through; anything else goes to
// denied. An empty expected key leaves the route open.
func RequireAdminSession(expected string, denied, next http.HandlerFunc) http.HandlerFunc {
	if expected == "" {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if auth.ValidateAdminKey(r.Header.Get(AdminKeyHeader), expected) == nil ||
			HasAdminSession(r, expected, time.Now()) {
			next(w, r)
			return
		}
		slog.Warn("admin access denied", "path", r.URL.Path, "ip", GetClientIP(r))
		denied(w, r)
	}
}

// SetAdminCookie issues an admin cookie expiring AdminSessionTTL after now.
// It is signed with the admin key so rotating the key logs everyone out.
func SetAdminCookie(w http.ResponseWriter, r *http.Request, key string, now time.Time) {
	expires := now.Add(AdminSessionTTL)
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookieName,
		Value:    auth.Sign(strconv.FormatInt(expires.Unix(), 10), key),
		Path:     adminCookiePath,
		MaxAge:   int(AdminSessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   r.TLS != nil,
	})
}

// ClearAdminCookie removes the admin cookie
func ClearAdminCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookieName,
		Value:    "",
		Path:     adminCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// HasAdminSession reports whether r carries a valid, unexpired admin cookie
func HasAdminSession(r *http.Request, key string, now time.Time) bool {
	c, err := r.Cookie(AdminCookieName)
	if err != nil {
		return false
	}
	value, err := auth.Verify(c.Value, key)
	if err != nil {
		return false
	}
	expires, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return false
	}
	return now.Unix() < expires
}
