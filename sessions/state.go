// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sessions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/style-funnel/catalog"
	"github.com/danielhkuo/style-funnel/survey"
)

// Entry keys, one for the answers and one for the position
const (
	KeyResponses = "survey-responses"
	KeyPosition  = "survey-current"
)

// Restore rebuilds a session's state. A position in the URL takes precedence
// over the stored one. Anything unreadable falls back to the defaults, and
// the resulting position is always inside the catalog.
func Restore(ctx context.Context, store Store, sessionID string, cat *catalog.Catalog, urlPosition string, hasURLPosition bool) survey.State {
	state := survey.State{Responses: survey.ResponseSet{}}

	raw, err := store.Get(ctx, sessionID, KeyResponses)
	switch {
	case err == nil:
		rs, err := survey.DecodeResponses([]byte(raw), cat)
		if err != nil {
			slog.Warn("discarding unreadable stored responses", "session", sessionID, "error", err)
		}
		state.Responses = rs
	case !errors.Is(err, ErrMissing):
		slog.Error("failed to read stored responses", "session", sessionID, "error", err)
	}

	if hasURLPosition {
		// NaN from the URL lands on the first question
		state.Position, _ = survey.ParsePosition(urlPosition, cat.Len())
		return state
	}

	raw, err = store.Get(ctx, sessionID, KeyPosition)
	switch {
	case err == nil:
		pos, ok := survey.ParsePosition(raw, cat.Len())
		if !ok {
			slog.Warn("discarding unreadable stored position", "session", sessionID, "value", raw)
		}
		state.Position = pos
	case !errors.Is(err, ErrMissing):
		slog.Error("failed to read stored position", "session", sessionID, "error", err)
	}

	return state
}

// Persist writes both entries for a session
func Persist(ctx context.Context, store Store, sessionID string, state survey.State) error {
	encoded, err := state.Responses.Encode()
	if err != nil {
		return err
	}
	if err := store.Set(ctx, sessionID, KeyResponses, encoded); err != nil {
		return fmt.Errorf("failed to persist responses: %w", err)
	}
	if err := store.Set(ctx, sessionID, KeyPosition, survey.FormatPosition(state.Position)); err != nil {
		return fmt.Errorf("failed to persist position: %w", err)
	}
	return nil
}

// Clear removes both entries after a submission
func Clear(ctx context.Context, store Store, sessionID string) error {
	return store.Delete(ctx, sessionID, KeyResponses, KeyPosition)
}
