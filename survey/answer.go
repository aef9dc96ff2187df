// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"encoding/json"
	"maps"
	"slices"
	"sort"
)

// Answer is one question's answer. The set of variants is closed:
// Text, Choices and Sizes.
type Answer interface {
	isAnswer()
	// Empty reports whether the answer carries no user input
	Empty() bool
	json.Marshaler
}

// Text answers single_choice, email, number and height questions
type Text string

// Choices answers the multiple choice family. Order is preserved and
// duplicates are dropped by NewChoices.
type Choices []string

// Sizes answers a size_group: sub-question id -> chosen option
type Sizes map[string]string

func (Text) isAnswer()    {}
func (Choices) isAnswer() {}
func (Sizes) isAnswer()   {}

func (t Text) Empty() bool    { return t == "" }
func (c Choices) Empty() bool { return len(c) == 0 }
func (s Sizes) Empty() bool   { return len(s) == 0 }

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (c Choices) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(c))
}

func (s Sizes) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]string(s))
}

// NewChoices builds a Choices value with duplicates removed
func NewChoices(values ...string) Choices {
	out := make(Choices, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Contains reports whether option is selected
func (c Choices) Contains(option string) bool {
	return slices.Contains(c, option)
}

// Toggle returns a copy of c with option added or removed
func (c Choices) Toggle(option string) Choices {
	if c.Contains(option) {
		out := make(Choices, 0, len(c))
		for _, v := range c {
			if v != option {
				out = append(out, v)
			}
		}
		return out
	}
	out := make(Choices, len(c), len(c)+1)
	copy(out, c)
	return append(out, option)
}

// Keys returns the answered sub-question ids in sorted order
func (s Sizes) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal compares two answers by variant and value
func Equal(a, b Answer) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	case Choices:
		bv, ok := b.(Choices)
		return ok && slices.Equal(av, bv)
	case Sizes:
		bv, ok := b.(Sizes)
		return ok && maps.Equal(av, bv)
	}
	return false
}
