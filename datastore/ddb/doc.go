/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design patterns
  - Macro-based key expansion (e.g., "USER#{ID}")
  - Partition queries on the table or on a Global Secondary Index
  - Automatic injection of the Go type name as "_entityType"

Key Features:

Macro Expansion:
Keys use macros that are replaced with entity field values, taken from the
index map registered for the entity type:

	registry.MustRegisterIndexMap[Record](map[string]string{
	    "PK":     "CHANGE#{ID}",        // Becomes "CHANGE#9f1c..."
	    "SK":     "CHANGE#{ID}",
	    "GSI1PK": "ENTITY#{EntityID}",  // Stored as PK1
	    "GSI1SK": "SEQ#{Sequence}",     // Stored as SK1
	})

Queries:

	records, err := store.Query(ctx, &datastore.QueryParams{
	    IndexName: "GSI1",
	    Partition: "ENTITY#42",
	})

Tests that talk to a real table carry the integration build tag.
*/
package ddb
