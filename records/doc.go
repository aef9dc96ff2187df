// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package records persists completed surveys in the survey_results table.

	repo := records.NewRepository(conn)
	err := repo.Insert(ctx, rec)
	recent, err := repo.ListRecent(ctx, 100)
	rec, err := repo.GetByID(ctx, id)

Records are never updated or deleted. ListRecent clamps its limit to
[1, models.MaxRecentLimit]; zero or negative means models.DefaultRecentLimit.
GetByID returns ErrNotFound for unknown ids.

Queries use $N placeholders, which both lib/pq and modernc.org/sqlite accept.
*/
package records
