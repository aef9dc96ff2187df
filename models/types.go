// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"time"

	"github.com/danielhkuo/style-funnel/catalog"
)

// Record list limits
const (
	DefaultRecentLimit = 100
	MaxRecentLimit     = 500
)

// Domain types

// StoredRecord is one completed survey submission. Created once, never
// updated or deleted.
type StoredRecord struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	AnswersJSON string    `json:"answers_json"`
	CreatedAt   time.Time `json:"created_at"`
}

// Request types

// answers keyed by question id, in the stored wire format
type SubmitSurveyRequest struct {
	Answers map[string]json.RawMessage `json:"answers"`
}

// Response types

type SubmitSurveyResponse struct {
	RecordID string `json:"record_id"`
	Message  string `json:"message"`
}

type CatalogResponse struct {
	Questions []catalog.Question `json:"questions"`
	Count     int                `json:"count"`
}

type RecordListResponse struct {
	Records []StoredRecord `json:"records"`
	Count   int            `json:"count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
