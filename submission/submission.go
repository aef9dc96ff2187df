// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/style-funnel/catalog"
	"github.com/danielhkuo/style-funnel/models"
	"github.com/danielhkuo/style-funnel/survey"
)

// DefaultTimeout bounds a single background write
const DefaultTimeout = 10 * time.Second

// Inserter writes one record. records.Repository satisfies it.
type Inserter interface {
	Insert(ctx context.Context, rec models.StoredRecord) error
}

// Gateway turns completed response sets into stored records
type Gateway struct {
	store   Inserter
	emailID string
	timeout time.Duration

	now   func() time.Time
	newID func() string

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewGateway(store Inserter, cat *catalog.Catalog) *Gateway {
	return &Gateway{
		store:   store,
		emailID: cat.EmailQuestionID(),
		timeout: DefaultTimeout,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Build assembles the record for a response set without writing it
func (g *Gateway) Build(responses survey.ResponseSet) (models.StoredRecord, error) {
	encoded, err := responses.Encode()
	if err != nil {
		return models.StoredRecord{}, err
	}

	var email string
	if t, ok := responses[g.emailID].(survey.Text); ok {
		email = string(t)
	}

	return models.StoredRecord{
		ID:          g.newID(),
		Email:       email,
		AnswersJSON: encoded,
		CreatedAt:   g.now().UTC(),
	}, nil
}

// Submit writes one record synchronously
func (g *Gateway) Submit(ctx context.Context, responses survey.ResponseSet) (models.StoredRecord, error) {
	rec, err := g.Build(responses)
	if err != nil {
		return models.StoredRecord{}, err
	}
	if err := g.store.Insert(ctx, rec); err != nil {
		return models.StoredRecord{}, fmt.Errorf("failed to submit survey: %w", err)
	}
	return rec, nil
}

// Enqueue submits in the background. The write outlives the caller's
// request but not the gateway's timeout. Failures are logged and dropped,
// as are submissions arriving after Close.
func (g *Gateway) Enqueue(ctx context.Context, responses survey.ResponseSet) {
	responses = responses.Clone()
	ctx = context.WithoutCancel(ctx)

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		slog.Error("survey submission dropped, gateway closed", "answers", len(responses))
		return
	}
	g.wg.Add(1)
	g.mu.Unlock()

	go func() {
		defer g.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		rec, err := g.Submit(ctx, responses)
		if err != nil {
			slog.Error("survey submission failed", "error", err)
			return
		}
		slog.Info("survey submitted", "record_id", rec.ID, "answers", len(responses))
	}()
}

// Wait blocks until every enqueued submission has finished. Callers must
// not Enqueue concurrently; use Close when shutting down.
func (g *Gateway) Wait() {
	g.wg.Wait()
}

// Close stops accepting submissions and waits for the in-flight ones
func (g *Gateway) Close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
	g.wg.Wait()
}
