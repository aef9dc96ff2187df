// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"encoding/json"
	"fmt"

	"github.com/danielhkuo/style-funnel/catalog"
)

// ResponseSet maps question id to answer. It only grows while a session
// advances and is dropped as a whole after submission.
type ResponseSet map[string]Answer

// Clone returns a shallow copy; answers themselves are never mutated in place
func (rs ResponseSet) Clone() ResponseSet {
	out := make(ResponseSet, len(rs))
	for k, v := range rs {
		out[k] = v
	}
	return out
}

// With returns a copy of rs with id set to answer
func (rs ResponseSet) With(id string, answer Answer) ResponseSet {
	out := rs.Clone()
	out[id] = answer
	return out
}

// Equal reports whether two response sets hold the same answers
func (rs ResponseSet) Equal(other ResponseSet) bool {
	if len(rs) != len(other) {
		return false
	}
	for k, v := range rs {
		ov, ok := other[k]
		if !ok || !Equal(v, ov) {
			return false
		}
	}
	return true
}

// Encode serializes the set using the storage wire format:
// strings, string arrays and string objects keyed by question id.
func (rs ResponseSet) Encode() (string, error) {
	if rs == nil {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]Answer(rs))
	if err != nil {
		return "", fmt.Errorf("failed to encode responses: %w", err)
	}
	return string(data), nil
}

// DecodeResponses parses stored responses, choosing each answer's variant
// from the catalog. Unknown question ids and values of the wrong shape are
// dropped rather than failing the whole set.
func DecodeResponses(data []byte, cat *catalog.Catalog) (ResponseSet, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ResponseSet{}, fmt.Errorf("failed to decode responses: %w", err)
	}

	out := make(ResponseSet, len(raw))
	for id, value := range raw {
		q, ok := cat.Lookup(id)
		if !ok {
			continue
		}
		if answer, ok := decodeAnswer(q, value); ok {
			out[id] = answer
		}
	}
	return out, nil
}

// DecodeAnswer parses a single stored value as the variant q expects
func DecodeAnswer(q catalog.Question, value json.RawMessage) (Answer, bool) {
	return decodeAnswer(q, value)
}

func decodeAnswer(q catalog.Question, value json.RawMessage) (Answer, bool) {
	switch {
	case q.Type.IsMultipleChoice():
		var values []string
		if err := json.Unmarshal(value, &values); err != nil || values == nil {
			return nil, false
		}
		return NewChoices(values...), true

	case q.Type == catalog.SizeGroup:
		var values map[string]string
		if err := json.Unmarshal(value, &values); err != nil || values == nil {
			return nil, false
		}
		sizes := make(Sizes, len(values))
		for sub, v := range values {
			if _, ok := q.SubQuestion(sub); ok && v != "" {
				sizes[sub] = v
			}
		}
		return sizes, true

	default:
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, false
		}
		return Text(s), true
	}
}
