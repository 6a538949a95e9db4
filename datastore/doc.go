/*
Package datastore defines the persistence interface used by the change journal.

The main interface is DataStore[T], which provides generic operations for any
entity type T:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    Query(ctx context.Context, params *QueryParams) ([]T, error)
	    Delete(ctx context.Context, key string) error
	}

Implementations:
  - ddb: DynamoDB implementation with single-table keys built from index maps
  - mock: In-memory implementation for tests and the memory journal backend

GetOne and Delete report a missing key with errors.ErrNotFound.
*/
package datastore
