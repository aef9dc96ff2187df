// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the style funnel server.

The style funnel is a one-question-at-a-time onboarding survey for
BLACKMRKT. Shoppers step through a catalog of questions (choices, images,
colors, email, numbers, height, sizes); progress lives in a server-side
session so a reload or a shared ?q= link resumes where it should. A
finished survey is stored as one record that staff read through the admin
pages.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=funnel.db SESSION_SECRET=dev go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -session-secret dev

A .env file in the working directory is read for defaults.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - SESSION_SECRET (-session-secret): Secret for signing session cookies

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_KEY (-admin-key): Guards /admin and the record API
  - CATALOG_PATH (-catalog): Question catalog YAML (default: built-in)
  - SESSION_BACKEND (-sessions): memory or redis (default: memory)
  - REDIS_URL (-redis): Redis URL for the redis backend
  - SUBMIT_RPS, SUBMIT_BURST: per-IP limit on write endpoints
  - TRUSTED_PROXIES (-trusted-proxies): proxy IPs/CIDRs whose X-Forwarded-For is believed
  - CORS_ORIGINS (-cors-origins): origins allowed on the JSON API (default: any)

# Architecture

  - catalog: question definitions, YAML loading and validation
  - survey: answers, validation and the navigation engine
  - sessions: session stores (memory, redis) and cookie identity
  - fields: per-type form rendering and parsing
  - effects: typewriter, scramble and transition timings
  - submission: background and synchronous record writes
  - records: survey_results repository
  - views: HTML pages
  - handlers: HTTP request handlers (survey, admin, api)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, rate limiting, admin key, JSON helpers
  - models: Request/response and record types
  - auth: Session signing and admin key checks
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
