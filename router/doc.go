// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the style funnel server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, router.Deps{
		Catalog:  cat,
		Sessions: store,
		Gateway:  gateway,
	})

# Endpoints

Health and assets:

	GET /health    - "OK"
	GET /static/*  - stylesheet

Survey (public, session cookie):

	GET  /               - redirect to /survey
	GET  /survey?q=N     - current question
	POST /survey/answer  - store or advance (rate limited)
	POST /survey/back    - previous question
	POST /survey/reset   - clear the session
	GET  /survey/thanks  - completion page

Admin (requires ADMIN_KEY when configured, via X-Admin-Key or the
sign-in cookie; refused requests get the sign-in page with 401):

	GET  /admin         - newest 100 submissions
	GET  /admin/{id}    - one submission
	GET  /admin/login   - sign-in form
	POST /admin/login   - check the key, set the admin cookie (rate limited)
	POST /admin/logout  - clear the admin cookie

JSON API (CORS for cfg.CORSOrigins, any origin when empty; admin routes
take X-Admin-Key only):

	GET  /api/catalog       - question catalog
	GET  /api/records       - newest records, ?limit=N (admin)
	GET  /api/records/{id}  - one record (admin)
	POST /api/submissions   - validate and store a full response set (rate limited)

# Handler Initialization

The router wires one survey.Engine over the catalog and the submission
gateway, and shares a records.Repository between the admin and API
handlers.
*/
package router
