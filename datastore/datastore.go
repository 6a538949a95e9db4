/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
)

// QueryParams selects the items sharing one partition key value.
type QueryParams struct {
	// Partition is the expanded partition key value, e.g. "ENTITY#User#42".
	Partition string
	// IndexName selects a secondary index. Empty queries the table itself.
	IndexName string
	// Limit caps the number of returned items. Zero means no limit.
	Limit int32
	// Descending reverses the sort key order.
	Descending bool
}

type DataStore[T any] interface {
	GetOne(ctx context.Context, key string) (*T, error)

	Put(ctx context.Context, entity T) error

	Query(ctx context.Context, params *QueryParams) ([]T, error)

	Delete(ctx context.Context, key string) error
}
