// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/danielhkuo/style-funnel/cliparse"
	"github.com/danielhkuo/style-funnel/effects"
	"github.com/danielhkuo/style-funnel/fields"
	"github.com/danielhkuo/style-funnel/sessions"
	"github.com/danielhkuo/style-funnel/survey"
	"github.com/danielhkuo/style-funnel/views"
)

// Form and query parameters
const (
	paramPosition  = "q"
	paramDirection = "d"
	paramAction    = "action"
	actionNext     = "next"
)

type SurveyHandler struct {
	engine *survey.Engine
	store  sessions.Store
	cfg    cliparse.Config
}

func NewSurveyHandler(engine *survey.Engine, store sessions.Store, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{engine: engine, store: store, cfg: cfg}
}

// SurveyURL is the canonical address of question i
func SurveyURL(i int, dir survey.Direction) string {
	v := url.Values{paramPosition: {survey.FormatPosition(i)}}
	if dir != survey.DirectionNone {
		v.Set(paramDirection, string(dir))
	}
	return "/survey?" + v.Encode()
}

// restore loads the session's state. values is the query string or posted
// form carrying the position the client was looking at.
func (h *SurveyHandler) restore(r *http.Request, sid string, values url.Values) survey.State {
	_, has := values[paramPosition]
	state := sessions.Restore(r.Context(), h.store, sid, h.engine.Catalog(), values.Get(paramPosition), has)
	return h.engine.Normalize(state)
}

func (h *SurveyHandler) persist(w http.ResponseWriter, r *http.Request, sid string, state survey.State) bool {
	if err := sessions.Persist(r.Context(), h.store, sid, state); err != nil {
		slog.Error("failed to persist session", "session", sid, "error", err)
		views.WriteMessage(w, http.StatusInternalServerError, "Failed to save your progress")
		return false
	}
	return true
}

func (h *SurveyHandler) render(w http.ResponseWriter, status int, state survey.State, warning string) {
	q := h.engine.Current(state)
	r, ok := fields.For(q.Type)
	views.WriteSurvey(w, status, views.SurveyPage{
		Question:    q,
		Position:    state.Position,
		Total:       h.engine.Catalog().Len(),
		Field:       fields.Render(q, state.Responses[q.ID]),
		Letters:     effects.Typewriter(q.Text),
		Warning:     warning,
		CanGoBack:   h.engine.CanGoBack(state),
		AutoAdvance: ok && r.AutoAdvance(),
		IsLast:      h.engine.IsLast(state),
	}, state.Direction)
}

// Root handles GET /
func (h *SurveyHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/survey", http.StatusFound)
}

// Show handles GET /survey?q=N
// The URL position wins over the stored one; a missing or out-of-range
// position redirects to the canonical URL.
func (h *SurveyHandler) Show(w http.ResponseWriter, r *http.Request) {
	sid := sessions.FromRequest(w, r, h.cfg.SessionSecret)
	query := r.URL.Query()
	state := h.restore(r, sid, query)

	if !h.persist(w, r, sid, state) {
		return
	}

	if query.Get(paramPosition) != survey.FormatPosition(state.Position) {
		http.Redirect(w, r, SurveyURL(state.Position, survey.DirectionNone), http.StatusFound)
		return
	}

	switch d := survey.Direction(query.Get(paramDirection)); d {
	case survey.DirectionForward, survey.DirectionBackward:
		state.Direction = d
	}

	h.render(w, http.StatusOK, state, "")
}

// Answer handles POST /survey/answer
// Single choice selections and action=next advance; anything else only
// stores the edit.
func (h *SurveyHandler) Answer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		views.WriteMessage(w, http.StatusBadRequest, "Invalid form")
		return
	}

	sid := sessions.FromRequest(w, r, h.cfg.SessionSecret)
	state := h.restore(r, sid, r.PostForm)
	q := h.engine.Current(state)

	renderer, ok := fields.For(q.Type)
	if !ok {
		views.WriteMessage(w, http.StatusUnprocessableEntity, fields.UnsupportedMessage)
		return
	}
	answer, parsed := renderer.Parse(q, r.PostForm)

	var outcome survey.Outcome
	switch {
	case renderer.AutoAdvance():
		if !parsed {
			h.render(w, http.StatusUnprocessableEntity, state, survey.WarningMissingResponse)
			return
		}
		state, outcome = h.engine.Select(r.Context(), state, string(answer.(survey.Text)))

	case r.PostForm.Get(paramAction) == actionNext:
		var candidate survey.Answer
		if parsed {
			candidate = answer
		}
		state, outcome = h.engine.Advance(r.Context(), state, candidate)
		if outcome.Kind == survey.OutcomeRejected && parsed {
			// keep what was typed, as an edit
			state = h.engine.SetAnswer(state, answer)
		}

	default:
		if parsed {
			state = h.engine.SetAnswer(state, answer)
		}
		if h.persist(w, r, sid, state) {
			http.Redirect(w, r, SurveyURL(state.Position, survey.DirectionNone), http.StatusSeeOther)
		}
		return
	}

	switch outcome.Kind {
	case survey.OutcomeRejected:
		if h.persist(w, r, sid, state) {
			h.render(w, http.StatusUnprocessableEntity, state, outcome.Warning)
		}

	case survey.OutcomeAdvanced:
		if h.persist(w, r, sid, state) {
			http.Redirect(w, r, SurveyURL(state.Position, state.Direction), http.StatusSeeOther)
		}

	case survey.OutcomeSubmitted:
		if err := sessions.Clear(r.Context(), h.store, sid); err != nil {
			slog.Error("failed to clear session", "session", sid, "error", err)
		}
		slog.Info("survey completed", "session", sid, "answers", len(outcome.Final))
		http.Redirect(w, r, "/survey/thanks", http.StatusSeeOther)
	}
}

// Back handles POST /survey/back
func (h *SurveyHandler) Back(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		views.WriteMessage(w, http.StatusBadRequest, "Invalid form")
		return
	}

	sid := sessions.FromRequest(w, r, h.cfg.SessionSecret)
	state := h.engine.Retreat(h.restore(r, sid, r.PostForm))

	if h.persist(w, r, sid, state) {
		http.Redirect(w, r, SurveyURL(state.Position, state.Direction), http.StatusSeeOther)
	}
}

// Reset handles POST /survey/reset
func (h *SurveyHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sid := sessions.FromRequest(w, r, h.cfg.SessionSecret)
	if err := sessions.Clear(r.Context(), h.store, sid); err != nil {
		slog.Error("failed to clear session", "session", sid, "error", err)
		views.WriteMessage(w, http.StatusInternalServerError, "Failed to reset the survey")
		return
	}
	http.Redirect(w, r, SurveyURL(0, survey.DirectionNone), http.StatusSeeOther)
}

// Thanks handles GET /survey/thanks
func (h *SurveyHandler) Thanks(w http.ResponseWriter, r *http.Request) {
	views.WriteThanks(w)
}
