// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file or PostgreSQL connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SessionSecret: Secret for signing session cookies (required)
  - AdminKey: Key for the admin pages and record API (optional)
  - CatalogPath: Question catalog YAML (optional; built-in catalog otherwise)
  - SessionBackend: memory or redis (default: memory)
  - RedisURL: Redis connection URL (required for the redis backend)
  - SubmitRPS, SubmitBurst: per-IP rate limit on write endpoints (default: 2/s, burst 10)
  - TrustedProxies: proxies whose X-Forwarded-For names the client (default: none)
  - CORSOrigins: origins allowed to call the JSON API (default: any)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-session-secret  Session signing secret
	-admin-key       Admin key
	-catalog         Catalog path
	-sessions        Session backend
	-redis           Redis URL
	-submit-rps      Write requests per second per IP
	-submit-burst    Write burst per IP
	-trusted-proxies Proxy IPs or CIDRs, comma-separated
	-cors-origins    Allowed API origins, comma-separated
	-env-file        Defaults file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	SESSION_SECRET  → -session-secret
	ADMIN_KEY       → -admin-key
	CATALOG_PATH    → -catalog
	SESSION_BACKEND → -sessions
	REDIS_URL       → -redis
	SUBMIT_RPS      → -submit-rps
	SUBMIT_BURST    → -submit-burst
	TRUSTED_PROXIES → -trusted-proxies
	CORS_ORIGINS    → -cors-origins

CLI flags take precedence over environment variables. Variables from the
.env file (github.com/joho/godotenv) fill in anything not already set in
the environment; a missing file is ignored.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - SESSION_SECRET is missing
  - DATABASE_TYPE or SESSION_BACKEND is unknown
  - the redis backend is chosen without REDIS_URL
  - the submit rate or burst is not positive
  - a TRUSTED_PROXIES entry is not an IP address or CIDR block
*/
package cliparse
