// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey implements answer types, validation and the traversal engine.

# Answers

Answer is a closed sum type:

  - Text: single_choice, email, number and height answers
  - Choices: the multiple choice family
  - Sizes: size_group sub-answers keyed by sub-question id

ResponseSet collects answers by question id and encodes to the same JSON
wire format that is stored in sessions and records.

# Engine

The engine is pure. It takes a State and returns the next one:

	eng := survey.NewEngine(cat, gateway)
	state, outcome := eng.Advance(ctx, state, survey.Text("a@b.com"))

Advance validates every question type except single_choice. A rejected
answer leaves the position untouched and carries a warning. Advancing past
the last question hands the responses to the Submitter and resets the
session. Persistence is done by the caller.
*/
package survey
