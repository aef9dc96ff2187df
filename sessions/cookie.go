// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sessions

import (
	"net/http"
	"time"

	"github.com/danielhkuo/style-funnel/auth"
)

// CookieName is the signed cookie carrying the session ID
const CookieName = "funnel_session"

const cookieMaxAge = 30 * 24 * time.Hour

// FromRequest returns the request's session ID, issuing a new signed cookie
// when the request has none or its signature does not verify.
func FromRequest(w http.ResponseWriter, r *http.Request, secret string) string {
	if c, err := r.Cookie(CookieName); err == nil {
		if sid, err := auth.Verify(c.Value, secret); err == nil {
			return sid
		}
	}

	sid := auth.NewSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    auth.Sign(sid, secret),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	return sid
}
