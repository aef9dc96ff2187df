// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/netip"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Session backends
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Defaults
const (
	DefaultPort        = 3318
	DefaultSubmitRPS   = 2
	DefaultSubmitBurst = 10
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	SessionSecret  string
	SessionBackend string
	RedisURL       string

	AdminKey    string
	CatalogPath string

	SubmitRPS   float64
	SubmitBurst int

	// Peers whose X-Forwarded-For is believed. Empty means none.
	TrustedProxies []netip.Prefix
	// Origins allowed to call the JSON API. Empty means any origin.
	CORSOrigins []string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, proxies, origins string

	flags := flag.NewFlagSet("style-funnel", flag.ContinueOnError)

	flags.StringVar(&envFile, "env-file", ".env", "Optional file of KEY=VALUE defaults")

	// Network config (can be CLI args or env)
	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	flags.StringVar(&cfg.SessionSecret, "session-secret", "", "Session cookie signing secret (prefer env)")
	flags.StringVar(&cfg.AdminKey, "admin-key", "", "Admin page key (prefer env)")

	flags.StringVar(&cfg.CatalogPath, "catalog", "", "Question catalog YAML (default: built-in)")
	flags.StringVar(&cfg.SessionBackend, "sessions", "", "Session backend (memory or redis)")
	flags.StringVar(&cfg.RedisURL, "redis", "", "Redis URL for the redis session backend")
	flags.Float64Var(&cfg.SubmitRPS, "submit-rps", 0, "Per-IP write requests per second")
	flags.IntVar(&cfg.SubmitBurst, "submit-burst", 0, "Per-IP write burst")
	flags.StringVar(&proxies, "trusted-proxies", "", "Comma-separated proxy IPs or CIDRs allowed to set X-Forwarded-For")
	flags.StringVar(&origins, "cors-origins", "", "Comma-separated origins allowed to call the JSON API")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// .env never overrides variables already set
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported DATABASE_TYPE %q (sqlite or postgres)", cfg.DatabaseType)
	}

	// Secrets - session secret MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	}

	if cfg.SessionBackend == "" {
		cfg.SessionBackend = os.Getenv("SESSION_BACKEND")
		if cfg.SessionBackend == "" {
			cfg.SessionBackend = SessionBackendMemory
		}
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}
	switch cfg.SessionBackend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if cfg.RedisURL == "" {
			return Config{}, errors.New("REDIS_URL required for the redis session backend")
		}
	default:
		return Config{}, fmt.Errorf("unsupported SESSION_BACKEND %q (memory or redis)", cfg.SessionBackend)
	}

	if cfg.SubmitRPS == 0 {
		v, err := envFloat("SUBMIT_RPS", DefaultSubmitRPS)
		if err != nil {
			return Config{}, err
		}
		cfg.SubmitRPS = v
	}
	if cfg.SubmitBurst == 0 {
		v, err := envFloat("SUBMIT_BURST", DefaultSubmitBurst)
		if err != nil {
			return Config{}, err
		}
		cfg.SubmitBurst = int(v)
	}
	if cfg.SubmitRPS <= 0 || cfg.SubmitBurst <= 0 {
		return Config{}, errors.New("submit rate and burst must be positive")
	}

	if proxies == "" {
		proxies = os.Getenv("TRUSTED_PROXIES")
	}
	prefixes, err := ParsePrefixes(splitList(proxies))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	cfg.TrustedProxies = prefixes

	if origins == "" {
		origins = os.Getenv("CORS_ORIGINS")
	}
	cfg.CORSOrigins = splitList(origins)

	return cfg, nil
}

// ParsePrefixes reads IP addresses and CIDR blocks. A bare address becomes
// a single-host prefix.
func ParsePrefixes(entries []string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, e := range entries {
		if strings.Contains(e, "/") {
			p, err := netip.ParsePrefix(e)
			if err != nil {
				return nil, err
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(e)
		if err != nil {
			return nil, err
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return v, nil
}
