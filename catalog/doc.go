// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the ordered question list that drives the survey.

A catalog is pure configuration. It is loaded once at startup, either from
the embedded default or from a YAML file:

	cat, err := catalog.Load("questions.yaml")

Loading validates structure up front (unique ids, known types, options for
choice questions, single_choice sub-questions for size groups) so the rest
of the server never has to re-check question shape.
*/
package catalog
