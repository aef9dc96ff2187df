// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"context"

	"github.com/danielhkuo/style-funnel/catalog"
)

// Direction records which way the last navigation went, for transitions
type Direction string

const (
	DirectionNone     Direction = ""
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

// State is one session's position and answers. The engine never mutates a
// State in place; every operation returns the next one.
type State struct {
	Position  int
	Responses ResponseSet
	Direction Direction
}

// OutcomeKind says what an advance did
type OutcomeKind int

const (
	OutcomeRejected OutcomeKind = iota
	OutcomeAdvanced
	OutcomeSubmitted
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRejected:
		return "rejected"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeSubmitted:
		return "submitted"
	}
	return "unknown"
}

type Outcome struct {
	Kind OutcomeKind
	// Warning is set when Kind is OutcomeRejected
	Warning string
	// Final holds the submitted answers when Kind is OutcomeSubmitted
	Final ResponseSet
}

// Submitter hands a completed response set to the record store. Enqueue
// must not block on the write.
type Submitter interface {
	Enqueue(ctx context.Context, responses ResponseSet)
}

type Engine struct {
	catalog   *catalog.Catalog
	submitter Submitter
}

func NewEngine(cat *catalog.Catalog, submitter Submitter) *Engine {
	return &Engine{catalog: cat, submitter: submitter}
}

func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Start returns the state of a fresh session
func (e *Engine) Start() State {
	return State{Position: 0, Responses: ResponseSet{}}
}

// Normalize clamps a restored state's position and fills in a nil set
func (e *Engine) Normalize(s State) State {
	s.Position = ClampPosition(s.Position, e.catalog.Len())
	if s.Responses == nil {
		s.Responses = ResponseSet{}
	}
	return s
}

func (e *Engine) Current(s State) catalog.Question {
	return e.catalog.At(ClampPosition(s.Position, e.catalog.Len()))
}

func (e *Engine) IsLast(s State) bool {
	return s.Position >= e.catalog.Len()-1
}

func (e *Engine) CanGoBack(s State) bool {
	return s.Position > 0
}

// SetAnswer records an edit to the current question without moving
func (e *Engine) SetAnswer(s State, answer Answer) State {
	s = e.Normalize(s)
	q := e.Current(s)
	if answer == nil {
		return s
	}
	s.Responses = s.Responses.With(q.ID, answer)
	return s
}

// Advance validates candidate against the current question, stores it and
// moves forward. On the last question the responses are handed to the
// submitter and a fresh state is returned.
func (e *Engine) Advance(ctx context.Context, s State, candidate Answer) (State, Outcome) {
	s = e.Normalize(s)
	q := e.Current(s)

	if q.Type != catalog.SingleChoice && !Validate(q, candidate) {
		return s, Outcome{Kind: OutcomeRejected, Warning: WarningMissingResponse}
	}

	s = e.SetAnswer(s, candidate)

	if !e.IsLast(s) {
		s.Position++
		s.Direction = DirectionForward
		return s, Outcome{Kind: OutcomeAdvanced}
	}

	final := s.Responses.Clone()
	if e.submitter != nil {
		e.submitter.Enqueue(ctx, final)
	}
	next := e.Start()
	next.Direction = DirectionForward
	return next, Outcome{Kind: OutcomeSubmitted, Final: final}
}

// Select handles a single_choice pick: the answer is stored and the survey
// advances exactly once.
func (e *Engine) Select(ctx context.Context, s State, option string) (State, Outcome) {
	s = e.SetAnswer(s, Text(option))
	return e.Advance(ctx, s, Text(option))
}

// Retreat moves back one question without validation
func (e *Engine) Retreat(s State) State {
	s = e.Normalize(s)
	if s.Position > 0 {
		s.Position--
		s.Direction = DirectionBackward
	}
	return s
}
