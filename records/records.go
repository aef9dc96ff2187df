// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/style-funnel/models"
)

// ErrNotFound is returned when no record has the requested id
var ErrNotFound = errors.New("record not found")

// Repository reads and writes survey_results. Records are insert-only.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert writes one record
func (r *Repository) Insert(ctx context.Context, rec models.StoredRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO survey_results (id, email, answers_json, created_at)
		VALUES ($1, $2, $3, $4)
	`, rec.ID, rec.Email, rec.AnswersJSON, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// ClampLimit keeps a requested list size within [1, MaxRecentLimit];
// non-positive values mean the default.
func ClampLimit(n int) int {
	if n <= 0 {
		return models.DefaultRecentLimit
	}
	if n > models.MaxRecentLimit {
		return models.MaxRecentLimit
	}
	return n
}

// ListRecent returns the n newest records, newest first
func (r *Repository) ListRecent(ctx context.Context, n int) ([]models.StoredRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, answers_json, created_at
		FROM survey_results
		ORDER BY created_at DESC, id
		LIMIT $1
	`, ClampLimit(n))
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	out := []models.StoredRecord{}
	for rows.Next() {
		var rec models.StoredRecord
		if err := rows.Scan(&rec.ID, &rec.Email, &rec.AnswersJSON, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return out, nil
}

// GetByID returns one record or ErrNotFound
func (r *Repository) GetByID(ctx context.Context, id string) (models.StoredRecord, error) {
	var rec models.StoredRecord
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, answers_json, created_at
		FROM survey_results
		WHERE id = $1
	`, id).Scan(&rec.ID, &rec.Email, &rec.AnswersJSON, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredRecord{}, ErrNotFound
	}
	if err != nil {
		return models.StoredRecord{}, fmt.Errorf("failed to query record: %w", err)
	}
	return rec, nil
}
