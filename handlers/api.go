// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/style-funnel/catalog"
	"github.com/danielhkuo/style-funnel/middleware"
	"github.com/danielhkuo/style-funnel/models"
	"github.com/danielhkuo/style-funnel/records"
	"github.com/danielhkuo/style-funnel/submission"
	"github.com/danielhkuo/style-funnel/survey"
)

type APIHandler struct {
	repo    *records.Repository
	gateway *submission.Gateway
	catalog *catalog.Catalog
}

func NewAPIHandler(repo *records.Repository, gateway *submission.Gateway, cat *catalog.Catalog) *APIHandler {
	return &APIHandler{repo: repo, gateway: gateway, catalog: cat}
}

// GetCatalog handles GET /api/catalog
func (h *APIHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.CatalogResponse{
		Questions: h.catalog.Questions(),
		Count:     h.catalog.Len(),
	})
}

// ListRecords handles GET /api/records?limit=N
func (h *APIHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	limit := models.DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	recs, err := h.repo.ListRecent(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list records")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RecordListResponse{
		Records: recs,
		Count:   len(recs),
	})
}

// GetRecord handles GET /api/records/{id}
func (h *APIHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	rec, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, records.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Record not found")
		return
	}
	if err != nil {
		slog.Error("failed to get record", "record_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get record")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rec)
}

// Submit handles POST /api/submissions
// Every answer must belong to a catalog question and pass its validation.
// The record is written before responding.
func (h *APIHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Answers) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answers is required")
		return
	}

	responses, err := h.decode(req)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	rec, err := h.gateway.Submit(r.Context(), responses)
	if err != nil {
		slog.Error("failed to submit survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit survey")
		return
	}

	slog.Info("survey submitted via api", "record_id", rec.ID, "answers", len(responses))

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitSurveyResponse{
		RecordID: rec.ID,
		Message:  "Survey submitted",
	})
}

func (h *APIHandler) decode(req models.SubmitSurveyRequest) (survey.ResponseSet, error) {
	responses := make(survey.ResponseSet, len(req.Answers))
	for id, raw := range req.Answers {
		q, ok := h.catalog.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("unknown question %s", id)
		}
		answer, ok := survey.DecodeAnswer(q, raw)
		if !ok || !survey.Validate(q, answer) || !withinOptions(q, answer) {
			return nil, fmt.Errorf("invalid answer for question %s", id)
		}
		responses[id] = answer
	}
	return responses, nil
}

// withinOptions checks choice answers against the question's options
func withinOptions(q catalog.Question, answer survey.Answer) bool {
	switch a := answer.(type) {
	case survey.Text:
		return q.Type != catalog.SingleChoice || q.HasOption(string(a))
	case survey.Choices:
		for _, c := range a {
			if !q.HasOption(c) {
				return false
			}
		}
	case survey.Sizes:
		for sub, v := range a {
			sq, ok := q.SubQuestion(sub)
			if !ok || !sq.HasOption(v) {
				return false
			}
		}
	}
	return true
}
