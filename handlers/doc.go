// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the style funnel.

# Handler Types

  - SurveyHandler: the server-rendered survey (show, answer, back, reset, thanks)
  - AdminHandler: read-only admin list and detail pages, plus key sign-in
  - APIHandler: JSON catalog, records and synchronous submissions

Handlers are created via constructor functions:

	surveyHandler := handlers.NewSurveyHandler(engine, store, cfg)
	adminHandler := handlers.NewAdminHandler(repo, cat, cfg.AdminKey)
	apiHandler := handlers.NewAPIHandler(repo, gateway, cat)

# Survey Flow

Every survey request identifies its session through the signed
funnel_session cookie. State is restored from the session store with the
position in the URL (GET) or the posted q field (POST) taking precedence.

	GET  /survey?q=N     → Show (redirects to the canonical ?q= when missing or out of range)
	POST /survey/answer  → Answer
	POST /survey/back    → Back
	POST /survey/reset   → Reset
	GET  /survey/thanks  → Thanks

Answer outcomes:

  - single_choice selection or action=next that passes validation: 303 to the next question
  - validation failure: 422 with "Please provide a response before continuing"
  - any other action: the edit is stored, 303 back to the same question
  - passing the last question: background submission, session cleared, 303 to /survey/thanks

Forward and backward redirects carry d=forward or d=backward so the page
can play its transition.

# JSON API

	GET  /api/catalog       → GetCatalog
	GET  /api/records       → ListRecords (?limit=, clamped to 1..500)
	GET  /api/records/{id}  → GetRecord
	POST /api/submissions   → Submit (201 with record_id)

Submit rejects unknown question ids, answers of the wrong shape, values
outside a question's options and answers that fail validation with 422.

# Admin Sign-in

	GET  /admin/login   → LoginForm
	POST /admin/login   → Login (sets the signed funnel_admin cookie)
	POST /admin/logout  → Logout

Denied renders the sign-in form with 401 for refused admin pages. The key
never appears in URLs.

# Error Responses

API errors use JSON:

	{"error": "Not Found", "message": "Record not found"}

HTML routes render an error page with the same status.
*/
package handlers
