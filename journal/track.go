/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package journal

import (
	"context"
	"fmt"
	"reflect"

	"github.com/suparena/accessorhooks"
	"github.com/suparena/accessorhooks/errors"
)

// HookName returns the name of the hook Track defines for attr.
func HookName(attr string) string {
	return "journal." + attr
}

// Track defines an after-change hook for each of attrs that appends the written
// value to j, and binds it. It takes the after slot of those attributes, so an
// after hook bound earlier is replaced.
func Track[O any](b *accessorhooks.Builder[O], j *Journal, entityType string, id func(O) string, attrs ...string) *accessorhooks.Builder[O] {
	for _, attr := range attrs {
		attr := attr
		b.Hook(HookName(attr), accessorhooks.ValueHook(func(owner O, value any) error {
			_, err := j.Append(context.Background(), entityType, id(owner), attr, value)
			return err
		}))
		b.AfterChange(HookName(attr), attr)
	}
	return b
}

// Replay applies the history of an entity to target through the setters of
// schema and returns the number of applied records. Use a schema that does not
// track the same attributes, otherwise replaying appends the history again.
func Replay[O any](ctx context.Context, j *Journal, schema *accessorhooks.Schema[O], entityType, entityID string, target O) (int, error) {
	records, err := j.History(ctx, entityType, entityID)
	if err != nil {
		return 0, err
	}

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		typ, ok := schema.ValueType(rec.Attribute)
		if !ok {
			return i, errors.NewUnknownAttributeError(schema.Name(), rec.Attribute)
		}
		value := reflect.New(typ)
		if err := rec.Decode(value.Interface()); err != nil {
			return i, fmt.Errorf("decode record %s: %w", rec.ID, err)
		}
		if err := schema.Set(target, rec.Attribute, value.Elem().Interface()); err != nil {
			return i, fmt.Errorf("replay record %s: %w", rec.ID, err)
		}
	}
	return len(records), nil
}
