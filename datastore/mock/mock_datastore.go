/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DataStore interface
package mock

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/accessorhooks/datastore"
	"github.com/suparena/accessorhooks/errors"
)

// DataStore is an in-memory implementation of datastore.DataStore[T]
type DataStore[T any] struct {
	mu          sync.RWMutex
	data        map[string]T
	queryFunc   func(ctx context.Context, params *datastore.QueryParams) ([]T, error)
	getKeyFunc  func(entity T) string
	partitions  map[string]func(entity T) string
	sortKeyFunc func(entity T) string
	putError    error
	deleteError error
}

// New creates a new mock DataStore
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data:       make(map[string]T),
		partitions: make(map[string]func(T) string),
	}
}

// WithGetKeyFunc sets a custom function to extract keys from entities
func (m *DataStore[T]) WithGetKeyFunc(f func(T) string) *DataStore[T] {
	m.getKeyFunc = f
	return m
}

// WithPartitionFunc sets the partition key extractor of an index. The empty
// index name is the table itself.
func (m *DataStore[T]) WithPartitionFunc(indexName string, f func(T) string) *DataStore[T] {
	m.partitions[indexName] = f
	return m
}

// WithSortKeyFunc sets the function ordering query results. Keys are used by default.
func (m *DataStore[T]) WithSortKeyFunc(f func(T) string) *DataStore[T] {
	m.sortKeyFunc = f
	return m
}

// WithQueryFunc sets a custom query function for testing
func (m *DataStore[T]) WithQueryFunc(f func(ctx context.Context, params *datastore.QueryParams) ([]T, error)) *DataStore[T] {
	m.queryFunc = f
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteError = err
	return m
}

// GetOne retrieves an entity by key
func (m *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if entity, exists := m.data[key]; exists {
		return &entity, nil
	}

	var zero T
	return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
}

// Put stores an entity
func (m *DataStore[T]) Put(ctx context.Context, entity T) error {
	if m.putError != nil {
		return m.putError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.extractKey(entity)
	if key == "" {
		return errors.NewValidationError("key", "unable to extract key from entity")
	}

	m.data[key] = entity
	return nil
}

// Query returns the entities whose partition key for params.IndexName equals
// params.Partition, ordered by sort key.
func (m *DataStore[T]) Query(ctx context.Context, params *datastore.QueryParams) ([]T, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, params)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	partitionOf, ok := m.partitions[params.IndexName]
	if !ok {
		return nil, errors.NewValidationError("IndexName", fmt.Sprintf("no partition function for index %q", params.IndexName))
	}

	m.mu.RLock()
	type hit struct {
		sortKey string
		entity  T
	}
	hits := make([]hit, 0)
	for key, v := range m.data {
		if partitionOf(v) != params.Partition {
			continue
		}
		sortKey := key
		if m.sortKeyFunc != nil {
			sortKey = m.sortKeyFunc(v)
		}
		hits = append(hits, hit{sortKey: sortKey, entity: v})
	}
	m.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool {
		if params.Descending {
			return hits[i].sortKey > hits[j].sortKey
		}
		return hits[i].sortKey < hits[j].sortKey
	})
	if params.Limit > 0 && int(params.Limit) < len(hits) {
		hits = hits[:params.Limit]
	}

	results := make([]T, 0, len(hits))
	for _, h := range hits {
		results = append(results, h.entity)
	}
	return results, nil
}

// Delete removes an entity by key
func (m *DataStore[T]) Delete(ctx context.Context, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		var zero T
		return errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}

	delete(m.data, key)
	return nil
}

// Helper methods for testing

// SetData directly sets the internal data map (for testing)
func (m *DataStore[T]) SetData(data map[string]T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

// GetData returns a copy of the internal data map (for testing)
func (m *DataStore[T]) GetData() map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]T, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
}

// extractKey attempts to extract a key from an entity
func (m *DataStore[T]) extractKey(entity T) string {
	if m.getKeyFunc != nil {
		return m.getKeyFunc(entity)
	}
	return fmt.Sprintf("key_%v", entity)
}
