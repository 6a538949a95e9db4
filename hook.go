/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package accessorhooks

import (
	"fmt"
	"reflect"

	"github.com/suparena/accessorhooks/errors"
)

// Event identifies the slot a hook occupies around an attribute write.
type Event int

const (
	// BeforeChange hooks run before the original writer.
	BeforeChange Event = iota
	// AfterChange hooks run once the original writer succeeded.
	AfterChange
)

func (e Event) String() string {
	switch e {
	case BeforeChange:
		return "before_change"
	case AfterChange:
		return "after_change"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Hook is invoked around an attribute write with the owner as receiver.
// A hook comes in one of two shapes, fixed when it is constructed: ValueHook
// receives the new value, PlainHook receives nothing.
type Hook[O any] interface {
	// Call runs the hook. Hooks that do not take a value ignore it.
	Call(owner O, value any) error

	// TakesValue reports whether the hook receives the written value.
	TakesValue() bool
}

type valueHook[O, V any] struct {
	fn func(O, V) error
}

// ValueHook builds a hook that is called with the value being written.
func ValueHook[O, V any](fn func(owner O, value V) error) Hook[O] {
	return valueHook[O, V]{fn: fn}
}

func (h valueHook[O, V]) Call(owner O, value any) error {
	v, err := valueAs[V](value)
	if err != nil {
		return err
	}
	return h.fn(owner, v)
}

func (valueHook[O, V]) TakesValue() bool { return true }

type plainHook[O any] struct {
	fn func(O) error
}

// PlainHook builds a hook that is called without the written value.
func PlainHook[O any](fn func(owner O) error) Hook[O] {
	return plainHook[O]{fn: fn}
}

func (h plainHook[O]) Call(owner O, _ any) error {
	return h.fn(owner)
}

func (plainHook[O]) TakesValue() bool { return false }

type noopHook[O any] struct{}

// NoopHook returns the hook used when a bound hook name has no definition.
func NoopHook[O any]() Hook[O] {
	return noopHook[O]{}
}

func (noopHook[O]) Call(O, any) error { return nil }

func (noopHook[O]) TakesValue() bool { return false }

// valueAs converts a written value to V. nil becomes the zero value.
func valueAs[V any](value any) (V, error) {
	var zero V
	if value == nil {
		return zero, nil
	}
	v, ok := value.(V)
	if !ok {
		return zero, errors.NewTypeMismatchError("", typeOf[V]().String(), fmt.Sprintf("%T", value))
	}
	return v, nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
