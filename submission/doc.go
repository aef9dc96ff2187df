// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package submission stores completed surveys.

A Gateway builds a models.StoredRecord from a survey.ResponseSet (fresh
UUID, UTC timestamp, email taken from the catalog's email question,
responses encoded as JSON) and hands it to an Inserter.

	gw := submission.NewGateway(records.NewRepository(conn), cat)

	// JSON API: synchronous
	rec, err := gw.Submit(ctx, responses)

	// survey flow: fire-and-forget
	gw.Enqueue(ctx, responses)

	// shutdown
	gw.Wait()

Enqueue never retries. A failed write is logged and the submission is lost.
*/
package submission
