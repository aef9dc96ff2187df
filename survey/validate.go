// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"regexp"
	"strings"

	"github.com/danielhkuo/style-funnel/catalog"
)

// WarningMissingResponse is shown when an answer fails validation
const WarningMissingResponse = "Please provide a response before continuing"

// Validate reports whether answer is acceptable for q.
// single_choice questions are always accepted.
func Validate(q catalog.Question, answer Answer) bool {
	if q.Type == catalog.SingleChoice {
		return true
	}
	if answer == nil || answer.Empty() {
		return false
	}

	switch v := answer.(type) {
	case Choices:
		return q.Type.IsMultipleChoice()
	case Sizes:
		return q.Type == catalog.SizeGroup
	case Text:
		switch q.Type {
		case catalog.Email:
			return strings.Contains(string(v), "@")
		case catalog.Number:
			return isNumeric(string(v))
		case catalog.Height:
			_, _, ok := SplitHeight(v)
			return ok
		}
	}
	return false
}

// decimalPattern matches plain and exponent decimal notation. Magnitude is
// not checked, so 1e400 is a number; Inf, NaN and hex literals are not.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func isNumeric(s string) bool {
	return decimalPattern.MatchString(strings.TrimSpace(s))
}
