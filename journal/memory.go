/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package journal

import (
	"fmt"

	"github.com/suparena/accessorhooks/datastore/mock"
)

// NewMemoryStore returns an in-memory record store that answers History queries.
func NewMemoryStore() *mock.DataStore[Record] {
	return mock.New[Record]().
		WithGetKeyFunc(func(r Record) string { return r.ID }).
		WithPartitionFunc(IndexName, func(r Record) string {
			return PartitionKey(r.EntityType, r.EntityID)
		}).
		WithSortKeyFunc(func(r Record) string { return fmt.Sprintf("%020d", r.Sequence) })
}
