// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	MaxFeet   = 9
	MaxInches = 11
)

var heightPattern = regexp.MustCompile(`^(\d+)'(\d+)"$`)

// ComposeHeight formats feet and inches as F'I". Both parts are clamped to
// their input bounds (feet 0-9, inches 0-11).
func ComposeHeight(feet, inches int) Text {
	return Text(fmt.Sprintf("%d'%d\"", clamp(feet, 0, MaxFeet), clamp(inches, 0, MaxInches)))
}

// ParseHeightParts builds a height answer from raw form input. It returns
// an empty Text until both parts hold a number.
func ParseHeightParts(feet, inches string) Text {
	f, err := strconv.Atoi(feet)
	if err != nil {
		return ""
	}
	// non-numeric inches fall back to 0 like the input box does
	i, err := strconv.Atoi(inches)
	if err != nil {
		if inches == "" {
			return ""
		}
		i = 0
	}
	return ComposeHeight(f, i)
}

// SplitHeight recovers feet and inches from a composed height value.
// Values outside feet 0-9 or inches 0-11 do not split.
func SplitHeight(value Text) (feet, inches string, ok bool) {
	m := heightPattern.FindStringSubmatch(string(value))
	if m == nil {
		return "", "", false
	}
	f, err := strconv.Atoi(m[1])
	if err != nil || f > MaxFeet {
		return "", "", false
	}
	i, err := strconv.Atoi(m[2])
	if err != nil || i > MaxInches {
		return "", "", false
	}
	return m[1], m[2], true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
