// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the server-side HTML pages.

# Pages

  - WriteSurvey: the current question, its typewriter letters, any warning
  - WriteThanks: completion page with the scramble frames
  - WriteAdminList: newest records with relative ages
  - WriteAdminDetail: one record, question by question
  - WriteMessage: not found and error pages

Transition timings from package effects are exposed to the stylesheet as
CSS custom properties on <body> (--advance-delay, --direction-reset, ...).
The body also carries a direction-forward or direction-backward class after
navigation.

Templates are embedded from templates/*.html and share layout.html.
*/
package views
