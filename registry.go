/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package accessorhooks

import (
	"reflect"
	"sort"
	"sync"

	"github.com/suparena/accessorhooks/errors"
)

// Registry attaches schemas to owner types. It is thread-safe.
type Registry struct {
	mu      sync.RWMutex
	schemas map[reflect.Type]any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[reflect.Type]any),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used by Attach, SchemaOf and Set.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Types returns the sorted names of all owner types with an attached schema.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for typ := range r.schemas {
		names = append(names, typ.String())
	}
	sort.Strings(names)
	return names
}

// AttachTo attaches s to owner type O in r. A type can be attached only once.
func AttachTo[O any](r *Registry, s *Schema[O]) error {
	if s == nil {
		return errors.NewValidationError("schema", "schema is nil")
	}

	typ := typeOf[O]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[typ]; exists {
		return errors.NewAlreadyExistsError("schema", typ.String())
	}
	r.schemas[typ] = s
	return nil
}

// Attach attaches s to owner type O in the default registry.
func Attach[O any](s *Schema[O]) error {
	return AttachTo(defaultRegistry, s)
}

// MustAttach attaches s to O in the default registry and returns it. It panics
// if O already has a schema.
//
//	var personSchema = accessorhooks.MustAttach(accessorhooks.Define[*Person]().
//	    AfterChange("updateFullName", "first_name", "second_name").
//	    MustBuild())
func MustAttach[O any](s *Schema[O]) *Schema[O] {
	if err := Attach(s); err != nil {
		panic("accessorhooks: " + err.Error())
	}
	return s
}

// DetachFrom removes the schema of O from r.
func DetachFrom[O any](r *Registry) error {
	typ := typeOf[O]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[typ]; !exists {
		return errors.NewNotFoundError("schema", typ.String())
	}
	delete(r.schemas, typ)
	return nil
}

// SchemaIn returns the schema attached to O in r.
func SchemaIn[O any](r *Registry) (*Schema[O], error) {
	typ := typeOf[O]()

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.schemas[typ]
	if !exists {
		return nil, errors.NewNotFoundError("schema", typ.String())
	}
	return s.(*Schema[O]), nil
}

// SchemaOf returns the schema attached to O in the default registry.
func SchemaOf[O any]() (*Schema[O], error) {
	return SchemaIn[O](defaultRegistry)
}

// SetIn writes attr of owner through the schema attached to O in r.
func SetIn[O any](r *Registry, owner O, attr string, value any) error {
	s, err := SchemaIn[O](r)
	if err != nil {
		return err
	}
	return s.Set(owner, attr, value)
}

// Set writes attr of owner through the schema attached to O in the default
// registry.
func Set[O any](owner O, attr string, value any) error {
	return SetIn(defaultRegistry, owner, attr, value)
}
