/*
Package registry holds the index maps that tell a storage backend how to key an
entity type.

An index map associates key attribute names with templates. A template mixes
literal text with {Field} macros that are replaced by the entity's attribute
values when it is stored:

	registry.RegisterIndexMap[journal.Record](map[string]string{
	    "PK":     "CHANGE#{ID}",
	    "SK":     "CHANGE#{ID}",
	    "GSI1PK": "ENTITY#{EntityType}#{EntityID}",
	    "GSI1SK": "SEQ#{Sequence}",
	})

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
