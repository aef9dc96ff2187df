// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/style-funnel/auth"
	"github.com/danielhkuo/style-funnel/catalog"
	"github.com/danielhkuo/style-funnel/middleware"
	"github.com/danielhkuo/style-funnel/models"
	"github.com/danielhkuo/style-funnel/records"
	"github.com/danielhkuo/style-funnel/views"
)

type AdminHandler struct {
	repo    *records.Repository
	catalog *catalog.Catalog
	key     string
	now     func() time.Time
}

// NewAdminHandler serves the admin pages. An empty key leaves them open.
func NewAdminHandler(repo *records.Repository, cat *catalog.Catalog, key string) *AdminHandler {
	return &AdminHandler{repo: repo, catalog: cat, key: key, now: time.Now}
}

// List handles GET /admin
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.repo.ListRecent(r.Context(), models.DefaultRecentLimit)
	if err != nil {
		slog.Error("failed to list records", "error", err)
		views.WriteMessage(w, http.StatusInternalServerError, "Failed to load submissions")
		return
	}

	list := views.NewAdminList(recs)
	list.SignOut = h.key != ""
	views.WriteAdminList(w, list)
}

// Detail handles GET /admin/{id}
func (h *AdminHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	rec, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, records.ErrNotFound) {
		views.WriteMessage(w, http.StatusNotFound, views.NotFoundMessage)
		return
	}
	if err != nil {
		slog.Error("failed to get record", "record_id", id, "error", err)
		views.WriteMessage(w, http.StatusInternalServerError, "Failed to load submission")
		return
	}

	views.WriteAdminDetail(w, views.NewAdminDetail(rec, h.catalog))
}

// Denied answers a refused admin page with the sign-in form
func (h *AdminHandler) Denied(w http.ResponseWriter, r *http.Request) {
	views.WriteAdminLogin(w, http.StatusUnauthorized, "")
}

// LoginForm handles GET /admin/login
func (h *AdminHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.key == "" || middleware.HasAdminSession(r, h.key, h.now()) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	views.WriteAdminLogin(w, http.StatusOK, "")
}

// Login handles POST /admin/login
// A correct key sets the admin cookie and returns to the list.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.key == "" {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		views.WriteAdminLogin(w, http.StatusBadRequest, "Invalid form")
		return
	}

	if err := auth.ValidateAdminKey(r.PostForm.Get("key"), h.key); err != nil {
		slog.Warn("admin sign-in failed", "ip", middleware.GetClientIP(r))
		views.WriteAdminLogin(w, http.StatusUnauthorized, views.BadKeyMessage)
		return
	}

	middleware.SetAdminCookie(w, r, h.key, h.now())
	slog.Info("admin signed in", "ip", middleware.GetClientIP(r))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout handles POST /admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearAdminCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}
