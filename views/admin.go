// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/danielhkuo/style-funnel/catalog"
	"github.com/danielhkuo/style-funnel/models"
	"github.com/danielhkuo/style-funnel/survey"
)

type AdminRow struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

type AdminList struct {
	Rows []AdminRow
	// SignOut shows the sign-out button when the pages are key-protected
	SignOut bool
}

// NewAdminList builds the list page for the given records, newest first
func NewAdminList(recs []models.StoredRecord) AdminList {
	rows := make([]AdminRow, len(recs))
	for i, rec := range recs {
		rows[i] = AdminRow{ID: rec.ID, Email: rec.Email, CreatedAt: rec.CreatedAt}
	}
	return AdminList{Rows: rows}
}

// LabeledValue is one answered sub-question of a size group
type LabeledValue struct {
	Label string
	Value string
}

// AnsweredQuestion pairs a catalog question with its formatted answer
type AnsweredQuestion struct {
	ID       string
	Question string
	Answer   string
	Parts    []LabeledValue
}

// RawAnswer is an answer whose id is not in the catalog
type RawAnswer struct {
	ID    string
	Value string
}

type AdminDetail struct {
	ID        string
	Email     string
	CreatedAt time.Time
	Answers   []AnsweredQuestion
	Extra     []RawAnswer
	// Raw holds the stored JSON when it could not be parsed at all
	Raw string
}

// NewAdminDetail lays out a stored record against the catalog. Questions
// come in catalog order; unknown ids fall back to their raw JSON.
func NewAdminDetail(rec models.StoredRecord, cat *catalog.Catalog) AdminDetail {
	d := AdminDetail{ID: rec.ID, Email: rec.Email, CreatedAt: rec.CreatedAt}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rec.AnswersJSON), &raw); err != nil {
		d.Raw = rec.AnswersJSON
		return d
	}
	responses, _ := survey.DecodeResponses([]byte(rec.AnswersJSON), cat)

	for _, q := range cat.Questions() {
		aq := AnsweredQuestion{ID: q.ID, Question: q.Text}
		switch a := responses[q.ID].(type) {
		case survey.Text:
			aq.Answer = string(a)
		case survey.Choices:
			aq.Answer = strings.Join(a, ", ")
		case survey.Sizes:
			for _, sq := range q.SubQuestions {
				if v, ok := a[sq.ID]; ok {
					aq.Parts = append(aq.Parts, LabeledValue{Label: sq.Text, Value: v})
				}
			}
		default:
			if v, ok := raw[q.ID]; ok && !blank(v) {
				// present but not in the shape the catalog expects
				aq.Answer = string(v)
			}
		}
		d.Answers = append(d.Answers, aq)
	}

	for id, v := range raw {
		if _, ok := cat.Lookup(id); !ok {
			d.Extra = append(d.Extra, RawAnswer{ID: id, Value: string(v)})
		}
	}
	sort.Slice(d.Extra, func(i, j int) bool { return d.Extra[i].ID < d.Extra[j].ID })

	return d
}

func blank(v json.RawMessage) bool {
	switch strings.TrimSpace(string(v)) {
	case "", "null", `""`, "[]", "{}":
		return true
	}
	return false
}
