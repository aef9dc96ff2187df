// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - StoredRecord: one submitted survey (id, email, answers_json, created_at)

# Request Types

  - SubmitSurveyRequest: answers keyed by question id

# Response Types

  - SubmitSurveyResponse: record_id, message
  - CatalogResponse: questions, count
  - RecordListResponse: records, count
  - ErrorResponse: error, message

# Constants

Admin list limits:

	DefaultRecentLimit = 100
	MaxRecentLimit     = 500
*/
package models
