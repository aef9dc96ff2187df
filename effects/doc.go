// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package effects computes the timing of decorative text and page
// transitions. Nothing here affects survey state.
package effects
