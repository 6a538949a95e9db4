/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/suparena/accessorhooks/datastore"
	"github.com/suparena/accessorhooks/errors"
)

const defaultTimeout = 5 * time.Second

// Option configures a Journal.
type Option func(*Journal)

// WithTimeout bounds each store call made from a hook. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(j *Journal) {
		j.timeout = d
	}
}

// WithLogger sets the logger of the journal.
func WithLogger(logger *slog.Logger) Option {
	return func(j *Journal) {
		j.logger = logger
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) {
		j.now = now
	}
}

// Journal appends records to a DataStore.
type Journal struct {
	store   datastore.DataStore[Record]
	timeout time.Duration
	logger  *slog.Logger
	now     func() time.Time
	last    atomic.Int64
}

// New creates a journal writing to store.
func New(store datastore.DataStore[Record], opts ...Option) *Journal {
	j := &Journal{
		store:   store,
		timeout: defaultTimeout,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Append records that attr of the given entity was set to value.
func (j *Journal) Append(ctx context.Context, entityType, entityID, attr string, value any) (Record, error) {
	if entityType == "" || entityID == "" {
		return Record{}, errors.NewValidationError("entity", "entity type and id are required")
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return Record{}, fmt.Errorf("encode %s.%s: %w", entityType, attr, err)
	}

	now := j.now()
	rec := Record{
		ID:         uuid.NewString(),
		EntityType: entityType,
		EntityID:   entityID,
		Attribute:  attr,
		Value:      string(encoded),
		Sequence:   j.nextSequence(now),
		ChangedAt:  formatTime(now),
	}

	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}
	if err := j.store.Put(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("append %s.%s: %w", entityType, attr, err)
	}

	j.logger.Debug("journal record appended",
		"entity_type", entityType,
		"entity_id", entityID,
		"attribute", attr,
		"sequence", rec.Sequence)
	return rec, nil
}

// nextSequence returns a value above every sequence handed out before, close
// to the wall clock in nanoseconds.
func (j *Journal) nextSequence(now time.Time) int64 {
	for {
		last := j.last.Load()
		next := now.UnixNano()
		if next <= last {
			next = last + 1
		}
		if j.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

// History returns the records of an entity ordered by sequence.
func (j *Journal) History(ctx context.Context, entityType, entityID string) ([]Record, error) {
	records, err := j.store.Query(ctx, &datastore.QueryParams{
		IndexName: IndexName,
		Partition: PartitionKey(entityType, entityID),
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(a, b int) bool {
		return records[a].Sequence < records[b].Sequence
	})
	return records, nil
}

// Forget deletes the history of an entity and returns the number of deleted records.
func (j *Journal) Forget(ctx context.Context, entityType, entityID string) (int, error) {
	records, err := j.History(ctx, entityType, entityID)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, rec := range records {
		err := j.store.Delete(ctx, rec.ID)
		switch {
		case err == nil:
			deleted++
		case errors.IsNotFound(err):
			// removed concurrently
		default:
			return deleted, err
		}
	}
	return deleted, nil
}
