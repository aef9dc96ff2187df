// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

Enable cross-origin requests for the JSON API:

	cors := middleware.CORS(cfg.CORSOrigins)
	mux.Handle("GET /api/catalog", cors(http.HandlerFunc(h.GetCatalog)))

With no origins configured any origin is allowed; otherwise only listed
origins are echoed, with Vary: Origin. Allows methods GET, POST, OPTIONS
with headers Content-Type and X-Admin-Key. Credentials are never allowed.
Preflights get 204.

# Rate Limiting

Per-IP token buckets on the write endpoints:

	limiter := middleware.NewRateLimiter(cfg.SubmitRPS, cfg.SubmitBurst).
		WithClientIP(middleware.NewClientIP(cfg.TrustedProxies))
	go limiter.Run(time.Minute, stop)
	mux.HandleFunc("POST /api/submissions", limiter.Limit(h.Submit))

Over-limit requests get 429 with Retry-After. Visitors idle for three
minutes are swept. At most DefaultMaxVisitors buckets are held; while the
table is full of active visitors, new clients are refused.

# Admin Key

JSON routes take the key in the X-Admin-Key header:

	mux.HandleFunc("GET /api/records", middleware.RequireAdminKey(cfg.AdminKey, h.ListRecords))

HTML pages also accept the signed admin cookie set by SetAdminCookie after
the login form, and hand refused requests to a fallback handler:

	mux.HandleFunc("GET /admin", middleware.RequireAdminSession(cfg.AdminKey, h.Denied, h.List))

The cookie holds an expiry signed with the admin key (AdminSessionTTL,
path /admin, HttpOnly, SameSite=Strict). Keys are compared in constant
time. With no key configured the routes are open.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.SubmitSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

GetClientIP returns the direct peer. ClientIP.Resolve believes
X-Forwarded-For and X-Real-IP only when the peer is a trusted proxy, and
then takes the nearest hop that is not itself a trusted proxy:

	resolver := middleware.NewClientIP(cfg.TrustedProxies)
	ip := resolver.Resolve(r)

Used as the rate limiter key.
*/
package middleware
