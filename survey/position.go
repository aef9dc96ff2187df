// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"strconv"
	"strings"
)

// ClampPosition forces i into [0, n-1]. n must be positive.
func ClampPosition(i, n int) int {
	return clamp(i, 0, n-1)
}

// ParsePosition reads a stored or URL-supplied position. Malformed input
// yields (0, false); numbers out of range are clamped.
func ParsePosition(raw string, n int) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return ClampPosition(i, n), true
}

// FormatPosition is the inverse of ParsePosition
func FormatPosition(i int) string {
	return strconv.Itoa(i)
}
