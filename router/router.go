// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/style-funnel/catalog"
	"github.com/danielhkuo/style-funnel/cliparse"
	"github.com/danielhkuo/style-funnel/handlers"
	"github.com/danielhkuo/style-funnel/middleware"
	"github.com/danielhkuo/style-funnel/records"
	"github.com/danielhkuo/style-funnel/sessions"
	"github.com/danielhkuo/style-funnel/submission"
	"github.com/danielhkuo/style-funnel/survey"
	"github.com/danielhkuo/style-funnel/views"
)

// Deps carries the long-lived collaborators. Nil fields get defaults:
// the built-in catalog, in-memory sessions, a gateway over db and a rate
// limiter from cfg keyed by the proxy-aware client address.
type Deps struct {
	Catalog  *catalog.Catalog
	Sessions sessions.Store
	Gateway  *submission.Gateway
	Limiter  *middleware.RateLimiter
}

func NewRouter(db *sql.DB, cfg cliparse.Config, deps Deps) *http.ServeMux {
	mux := http.NewServeMux()

	repo := records.NewRepository(db)
	cat := deps.Catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Default(); err != nil {
			panic(err)
		}
	}
	store := deps.Sessions
	if store == nil {
		store = sessions.NewMemoryStore()
	}
	gateway := deps.Gateway
	if gateway == nil {
		gateway = submission.NewGateway(repo, cat)
	}
	limiter := deps.Limiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(cfg.SubmitRPS, cfg.SubmitBurst).
			WithClientIP(middleware.NewClientIP(cfg.TrustedProxies))
	}

	// Initialize handlers
	engine := survey.NewEngine(cat, gateway)
	surveyHandler := handlers.NewSurveyHandler(engine, store, cfg)
	adminHandler := handlers.NewAdminHandler(repo, cat, cfg.AdminKey)
	apiHandler := handlers.NewAPIHandler(repo, gateway, cat)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdminSession(cfg.AdminKey, adminHandler.Denied, h))
	}
	cors := middleware.CORS(cfg.CORSOrigins)
	api := func(h http.HandlerFunc) http.Handler {
		return cors(middleware.WithLogging(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /static/", http.StripPrefix("/static/", views.Static()))

	// Survey flow (public, session cookie)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(surveyHandler.Root))
	mux.HandleFunc("GET /survey", middleware.WithLogging(surveyHandler.Show))
	mux.HandleFunc("GET /survey/thanks", middleware.WithLogging(surveyHandler.Thanks))
	mux.HandleFunc("POST /survey/answer", middleware.WithLogging(limiter.Limit(surveyHandler.Answer)))
	mux.HandleFunc("POST /survey/back", middleware.WithLogging(surveyHandler.Back))
	mux.HandleFunc("POST /survey/reset", middleware.WithLogging(surveyHandler.Reset))

	// Admin viewer (X-Admin-Key or the sign-in cookie when ADMIN_KEY is set)
	mux.HandleFunc("GET /admin", admin(adminHandler.List))
	mux.HandleFunc("GET /admin/{id}", admin(adminHandler.Detail))
	mux.HandleFunc("GET /admin/login", middleware.WithLogging(adminHandler.LoginForm))
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(limiter.Limit(adminHandler.Login)))
	mux.HandleFunc("POST /admin/logout", middleware.WithLogging(adminHandler.Logout))

	// JSON API
	mux.Handle("GET /api/catalog", api(apiHandler.GetCatalog))
	mux.Handle("GET /api/records", api(middleware.RequireAdminKey(cfg.AdminKey, apiHandler.ListRecords)))
	mux.Handle("GET /api/records/{id}", api(middleware.RequireAdminKey(cfg.AdminKey, apiHandler.GetRecord)))
	mux.Handle("POST /api/submissions", api(limiter.Limit(apiHandler.Submit)))
	mux.Handle("OPTIONS /api/", cors(http.NotFoundHandler()))

	return mux
}
