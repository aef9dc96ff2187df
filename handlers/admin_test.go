// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/style-funnel/middleware"
	"github.com/danielhkuo/style-funnel/records"
	"github.com/danielhkuo/style-funnel/testutil"
	"github.com/danielhkuo/style-funnel/views"
)

func newAdminMux(t *testing.T, key string) (*http.ServeMux, func(email, answers string, at time.Time) string) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(records.NewRepository(db), testutil.TestCatalog(t), key)

	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAdminSession(key, h.Denied, next)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin", guard(h.List))
	mux.HandleFunc("GET /admin/{id}", guard(h.Detail))
	mux.HandleFunc("GET /admin/login", h.LoginForm)
	mux.HandleFunc("POST /admin/login", h.Login)
	mux.HandleFunc("POST /admin/logout", h.Logout)

	insert := func(email, answers string, at time.Time) string {
		return testutil.InsertTestRecord(t, db, email, answers, at)
	}
	return mux, insert
}

func adminCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == middleware.AdminCookieName {
			return c
		}
	}
	t.Fatal("no admin cookie set")
	return nil
}

func TestAdmin_List(t *testing.T) {
	mux, insert := newAdminMux(t, "")
	id := insert("a@b.co", `{"q1":"A"}`, time.Now().Add(-3*time.Hour))

	w := serveAPI(mux, testutil.MakeRequest("GET", "/admin", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	assert.Contains(t, body, "a@b.co")
	assert.Contains(t, body, `href="/admin/`+id+`"`)
	assert.Contains(t, body, "3 hours ago")
	assert.NotContains(t, body, "Sign out", "open pages have nothing to sign out of")
}

func TestAdmin_Detail(t *testing.T) {
	mux, insert := newAdminMux(t, "")
	id := insert("a@b.co", `{"q1":"A","q2":"a@b.co","q3":"42","old":"x"}`, time.Now())

	w := serveAPI(mux, testutil.MakeRequest("GET", "/admin/"+id, nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	assert.Contains(t, body, "Q: How old are you?")
	assert.Contains(t, body, "A: 42")
	assert.Contains(t, body, "Other answers")
}

func TestAdmin_Detail_NotFound(t *testing.T) {
	mux, _ := newAdminMux(t, "")

	w := serveAPI(mux, testutil.MakeRequest("GET", "/admin/missing", nil, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
	assert.Contains(t, w.Body.String(), views.NotFoundMessage)
}

func TestAdmin_DeniedRendersLoginPage(t *testing.T) {
	mux, _ := newAdminMux(t, "s3cret")

	for _, path := range []string{"/admin", "/admin/some-id", "/admin?key=s3cret"} {
		w := serveAPI(mux, testutil.MakeRequest("GET", path, nil, nil))
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"), path)
		assert.Contains(t, w.Body.String(), `action="/admin/login"`, path)
	}
}

func TestAdmin_LoginFlow(t *testing.T) {
	mux, insert := newAdminMux(t, "s3cret")
	id := insert("a@b.co", `{"q1":"A"}`, time.Now())

	// wrong key
	w := serveAPI(mux, testutil.MakeFormRequest("/admin/login", url.Values{"key": {"nope"}}))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
	assert.Contains(t, w.Body.String(), views.BadKeyMessage)
	assert.Empty(t, w.Result().Cookies())

	// right key
	w = serveAPI(mux, testutil.MakeFormRequest("/admin/login", url.Values{"key": {"s3cret"}}))
	testutil.AssertStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	cookie := adminCookie(t, w.Result())
	assert.NotContains(t, cookie.Value, "s3cret")

	// the cookie opens the list, and links carry no secret
	req := testutil.MakeRequest("GET", "/admin", nil, nil)
	req.AddCookie(cookie)
	w = serveAPI(mux, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	assert.Contains(t, body, `href="/admin/`+id+`"`)
	assert.NotContains(t, body, "s3cret")
	assert.Contains(t, body, "Sign out")

	// the login form sends signed-in admins straight to the list
	req = testutil.MakeRequest("GET", "/admin/login", nil, nil)
	req.AddCookie(cookie)
	w = serveAPI(mux, req)
	testutil.AssertStatus(t, w, http.StatusSeeOther)

	// logout clears the cookie
	w = serveAPI(mux, testutil.MakeFormRequest("/admin/logout", nil, cookie))
	testutil.AssertStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
	cleared := adminCookie(t, w.Result())
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestAdmin_CookieExpires(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(records.NewRepository(db), testutil.TestCatalog(t), "s3cret")
	h.now = func() time.Time { return time.Now().Add(-middleware.AdminSessionTTL - time.Minute) }

	w := serveAPI(http.HandlerFunc(h.Login), testutil.MakeFormRequest("/admin/login", url.Values{"key": {"s3cret"}}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	cookie := adminCookie(t, w.Result())

	req := testutil.MakeRequest("GET", "/admin", nil, nil)
	req.AddCookie(cookie)
	w = serveAPI(middleware.RequireAdminSession("s3cret", h.Denied, h.List), req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestAdmin_LoginFormWhenOpen(t *testing.T) {
	mux, _ := newAdminMux(t, "")

	w := serveAPI(mux, testutil.MakeRequest("GET", "/admin/login", nil, nil))
	testutil.AssertStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}
