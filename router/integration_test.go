// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/style-funnel/middleware"
	"github.com/danielhkuo/style-funnel/models"
	"github.com/danielhkuo/style-funnel/records"
	"github.com/danielhkuo/style-funnel/sessions"
	"github.com/danielhkuo/style-funnel/submission"
	"github.com/danielhkuo/style-funnel/testutil"
)

// TestFullSurveyWorkflow completes the survey through the router and reads
// the submission back through the admin page and the record API
func TestFullSurveyWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cfg.AdminKey = "s3cret"
	cat := testutil.TestCatalog(t)
	gateway := submission.NewGateway(records.NewRepository(db), cat)

	mux := NewRouter(db, cfg, Deps{Catalog: cat, Gateway: gateway})

	var cookie *http.Cookie
	do := func(req *http.Request) *httptest.ResponseRecorder {
		if cookie != nil {
			req.AddCookie(cookie)
		}
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		for _, c := range w.Result().Cookies() {
			if c.Name == sessions.CookieName {
				cookie = c
			}
		}
		return w
	}
	answer := func(form url.Values) *httptest.ResponseRecorder {
		return do(testutil.MakeFormRequest("/survey/answer", form))
	}

	// Step 1: land on the survey
	w := do(httptest.NewRequest("GET", "/", nil))
	testutil.AssertStatus(t, w, http.StatusFound)
	w = do(httptest.NewRequest("GET", "/survey", nil))
	testutil.AssertStatus(t, w, http.StatusFound)
	if cookie == nil {
		t.Fatal("Expected a session cookie")
	}
	w = do(httptest.NewRequest("GET", w.Header().Get("Location"), nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 2: answer every question
	w = answer(url.Values{"q": {"0"}, "choice": {"B"}})
	testutil.AssertStatus(t, w, http.StatusSeeOther)

	w = answer(url.Values{"q": {"1"}, "value": {"flow@x.co"}, "action": {"next"}})
	testutil.AssertStatus(t, w, http.StatusSeeOther)

	// Step 3: go back and forward again without losing the email
	w = do(testutil.MakeFormRequest("/survey/back", url.Values{"q": {"2"}}))
	testutil.AssertStatus(t, w, http.StatusSeeOther)
	w = do(httptest.NewRequest("GET", w.Header().Get("Location"), nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `value="flow@x.co"`) {
		t.Error("Expected the stored email to be shown after going back")
	}
	w = answer(url.Values{"q": {"1"}, "value": {"flow@x.co"}, "action": {"next"}})
	testutil.AssertStatus(t, w, http.StatusSeeOther)

	// Step 4: submit
	w = answer(url.Values{"q": {"2"}, "value": {"29"}, "action": {"next"}})
	testutil.AssertStatus(t, w, http.StatusSeeOther)
	if loc := w.Header().Get("Location"); loc != "/survey/thanks" {
		t.Fatalf("Expected redirect to /survey/thanks, got '%s'", loc)
	}
	gateway.Wait()

	// Step 5: the record shows up for the admin
	req := httptest.NewRequest("GET", "/api/records", nil)
	req.Header.Set("X-Admin-Key", cfg.AdminKey)
	w = do(req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var list models.RecordListResponse
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if list.Count != 1 {
		t.Fatalf("Expected 1 record, got %d", list.Count)
	}
	rec := list.Records[0]
	if rec.Email != "flow@x.co" {
		t.Errorf("Expected email flow@x.co, got '%s'", rec.Email)
	}

	w = do(testutil.MakeFormRequest("/admin/login", url.Values{"key": {cfg.AdminKey}}))
	testutil.AssertStatus(t, w, http.StatusSeeOther)
	var adminCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AdminCookieName {
			adminCookie = c
		}
	}
	if adminCookie == nil {
		t.Fatal("Expected an admin cookie after signing in")
	}

	req = httptest.NewRequest("GET", "/admin/"+rec.ID, nil)
	req.AddCookie(adminCookie)
	w = do(req)
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "A: 29") {
		t.Error("Expected the admin detail to show the age answer")
	}

	// Step 6: a new visit starts from the first question
	w = do(httptest.NewRequest("GET", "/survey", nil))
	if loc := w.Header().Get("Location"); loc != "/survey?q=0" {
		t.Errorf("Expected a fresh survey after submission, got '%s'", loc)
	}
}
