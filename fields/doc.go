// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fields renders survey questions as HTML form controls and parses
the submitted form back into survey answers.

	r, ok := fields.For(q.Type)
	html := r.Render(q, current)
	answer, ok := r.Parse(q, req.PostForm)

Form names:

  - choice: single_choice buttons (auto-advance)
  - value: checkboxes, email and number inputs
  - feet, inches: height inputs, composed as F'I"
  - size_<sub id>: one select per size_group sub-question

Templates are embedded from templates/*.html.
*/
package fields
