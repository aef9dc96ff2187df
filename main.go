// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/style-funnel/catalog"
	"github.com/danielhkuo/style-funnel/cliparse"
	"github.com/danielhkuo/style-funnel/db"
	"github.com/danielhkuo/style-funnel/middleware"
	"github.com/danielhkuo/style-funnel/records"
	"github.com/danielhkuo/style-funnel/router"
	"github.com/danielhkuo/style-funnel/sessions"
	"github.com/danielhkuo/style-funnel/submission"
)

const sessionTTL = 30 * 24 * time.Hour

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the record store
	driver, err := db.DriverName(cfg.DatabaseType)
	if err != nil {
		slog.Error("database configuration invalid", "error", err)
		os.Exit(1)
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Load the question catalog
	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		slog.Error("catalog load failed", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog ready", "questions", cat.Len())

	// Session store
	var store sessions.Store
	switch cfg.SessionBackend {
	case cliparse.SessionBackendRedis:
		rs, err := sessions.NewRedisStore(cfg.RedisURL, sessionTTL)
		if err != nil {
			slog.Error("redis configuration invalid", "error", err)
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = rs.Ping(ctx)
		cancel()
		if err != nil {
			slog.Error("redis ping failed", "error", err)
			os.Exit(1)
		}
		defer rs.Close()
		store = rs
	default:
		store = sessions.NewMemoryStore()
	}
	slog.Info("Session store ready", "backend", cfg.SessionBackend)

	if cfg.AdminKey == "" {
		slog.Warn("ADMIN_KEY not set, admin pages and record API are open")
	}

	gateway := submission.NewGateway(records.NewRepository(dbConn), cat)

	limiter := middleware.NewRateLimiter(cfg.SubmitRPS, cfg.SubmitBurst).
		WithClientIP(middleware.NewClientIP(cfg.TrustedProxies))
	if len(cfg.TrustedProxies) > 0 {
		slog.Info("Trusting forwarded client addresses", "proxies", len(cfg.TrustedProxies))
	}
	stopSweep := make(chan struct{})
	go limiter.Run(time.Minute, stopSweep)

	// Create router
	mux := router.NewRouter(dbConn, cfg, router.Deps{
		Catalog:  cat,
		Sessions: store,
		Gateway:  gateway,
		Limiter:  limiter,
	})

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		// Wait for Ctrl-C signal
		<-ctrlc
		close(stopSweep)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		// Shutdown returns once every active handler has finished
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Graceful shutdown incomplete", "error", err)
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		// ListenAndServe returns as soon as Shutdown starts
		<-shutdownDone
		slog.Info("Server closed")
	} else {
		slog.Error("Server closed", "error", err)
	}

	// Let background submissions finish before the database closes
	gateway.Close()
}
