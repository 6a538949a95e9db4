/*
Package errors provides semantic error types for accessorhooks.

The package defines the configuration and storage failures the library can
report. Each typed error matches its sentinel through errors.Is, so callers can
test either the sentinel or use the helper functions.

Common Errors:

	var (
	    ErrNotFound         = errors.New("not found")
	    ErrAlreadyExists    = errors.New("already exists")
	    ErrInvalidInput     = errors.New("invalid input")
	    ErrUnknownAttribute = errors.New("unknown attribute")
	    ErrTypeMismatch     = errors.New("type mismatch")
	    ErrNoIndexMap       = errors.New("no index map found for type")
	)

Usage:

	err := userSchema.Set(u, "nickname", "x")
	if errors.IsUnknownAttribute(err) {
	    // the schema never declared "nickname"
	}

Errors returned by hooks and custom writers are not part of this taxonomy: the
setter returns them exactly as the hook produced them.
*/
package errors
