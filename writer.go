/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package accessorhooks

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/suparena/accessorhooks/errors"
)

// Writer performs the plain assignment of a single attribute, without hooks.
type Writer[O any] interface {
	// Write stores value on owner.
	Write(owner O, value any) error

	// ValueType is the type of value the writer accepts.
	ValueType() reflect.Type
}

type fieldWriter[O, V any] struct {
	field func(O) *V
}

// Field returns a writer that assigns through a pointer to the owner's field.
// It is the default field assignment for unexported fields:
//
//	accessorhooks.Field(func(p *Person) *string { return &p.name })
func Field[O, V any](field func(owner O) *V) Writer[O] {
	return fieldWriter[O, V]{field: field}
}

func (w fieldWriter[O, V]) Write(owner O, value any) error {
	v, err := valueAs[V](value)
	if err != nil {
		return err
	}
	*w.field(owner) = v
	return nil
}

func (fieldWriter[O, V]) ValueType() reflect.Type { return typeOf[V]() }

type assignWriter[O, V any] struct {
	fn func(O, V) error
}

// Assign wraps a custom writer. Side effects of fn are part of the write.
func Assign[O, V any](fn func(owner O, value V) error) Writer[O] {
	return assignWriter[O, V]{fn: fn}
}

func (w assignWriter[O, V]) Write(owner O, value any) error {
	v, err := valueAs[V](value)
	if err != nil {
		return err
	}
	return w.fn(owner, v)
}

func (assignWriter[O, V]) ValueType() reflect.Type { return typeOf[V]() }

type structFieldWriter[O any] struct {
	attr  string
	index []int
	typ   reflect.Type
}

// StructField returns a reflection based writer for an exported field of the
// struct O points to. The field is matched by a `hook:"attr"` tag first, then
// by name with underscores removed, ignoring case, so "first_name" finds
// FirstName.
func StructField[O any](attr string) (Writer[O], error) {
	t := typeOf[O]()
	if t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return nil, errors.NewValidationError(attr, fmt.Sprintf("field writer needs a pointer to a struct, got %s", t))
	}

	f, ok := lookupField(t.Elem(), attr)
	if !ok {
		return nil, errors.NewUnknownAttributeError(t.String(), attr)
	}
	if !f.IsExported() {
		return nil, errors.NewValidationError(attr, fmt.Sprintf("field %s is not exported, use Field instead", f.Name))
	}

	return structFieldWriter[O]{attr: attr, index: f.Index, typ: f.Type}, nil
}

func (w structFieldWriter[O]) Write(owner O, value any) error {
	rv := reflect.ValueOf(owner)
	if !rv.IsValid() || rv.IsNil() {
		return errors.NewValidationError(w.attr, "cannot write to a nil owner")
	}

	field, err := rv.Elem().FieldByIndexErr(w.index)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", w.attr, err)
	}

	if value == nil {
		field.Set(reflect.Zero(w.typ))
		return nil
	}

	if err := checkValue(w.attr, w.typ, value); err != nil {
		return err
	}
	field.Set(reflect.ValueOf(value))
	return nil
}

func (w structFieldWriter[O]) ValueType() reflect.Type { return w.typ }

func lookupField(t reflect.Type, attr string) (reflect.StructField, bool) {
	fields := reflect.VisibleFields(t)
	for _, f := range fields {
		if tag, ok := f.Tag.Lookup("hook"); ok && tag == attr {
			return f, true
		}
	}

	want := strings.ToLower(strings.ReplaceAll(attr, "_", ""))
	for _, f := range fields {
		if f.Anonymous {
			continue
		}
		if strings.ToLower(f.Name) == want {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

// checkValue accepts values of exactly typ, or implementing typ when it is an
// interface, the same rule as the type assertion in typed writers. A []string
// is rejected for a named slice type. nil is written as the zero value.
func checkValue(attr string, typ reflect.Type, value any) error {
	if value == nil {
		return nil
	}
	got := reflect.TypeOf(value)
	if got == typ || (typ.Kind() == reflect.Interface && got.Implements(typ)) {
		return nil
	}
	return errors.NewTypeMismatchError(attr, typ.String(), got.String())
}
