/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package accessorhooks

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"

	"github.com/suparena/accessorhooks/errors"
)

// Option configures a Builder.
type Option func(*options)

type options struct {
	name   string
	logger *slog.Logger
}

// WithName sets the schema name used in errors and log lines.
// It defaults to the owner type, e.g. "*main.Person".
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger of the schema.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions[O any](opts []Option) options {
	o := options{name: typeOf[O]().String()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// binding is the hook configuration of one intercepted attribute. original is
// captured when the first hook is registered for the attribute and never replaced.
type binding[O any] struct {
	before   string
	after    string
	original Writer[O]
}

// Builder collects the hook configuration of an owner type. It is meant to be
// used once, at package initialisation, and then turned into a Schema.
type Builder[O any] struct {
	opts     options
	writers  map[string]Writer[O]
	bindings map[string]*binding[O]
	hooks    map[string]Hook[O]
	late     map[string]bool
	errs     []error
}

// Define starts the configuration of owner type O.
func Define[O any](opts ...Option) *Builder[O] {
	return &Builder[O]{
		opts:     newOptions[O](opts),
		writers:  make(map[string]Writer[O]),
		bindings: make(map[string]*binding[O]),
		hooks:    make(map[string]Hook[O]),
		late:     make(map[string]bool),
	}
}

// Accessor declares attributes written straight into the matching exported
// struct field. See StructField for how fields are matched.
func (b *Builder[O]) Accessor(attrs ...string) *Builder[O] {
	for _, attr := range attrs {
		w, err := StructField[O](attr)
		if err != nil {
			b.errs = append(b.errs, err)
			continue
		}
		b.Writer(attr, w)
	}
	return b
}

// Writer declares the writer of attr, replacing any previous one.
//
// Hook registration captures the writer that is current at that moment, so a
// custom writer must be declared before the hooks that should wrap it. A writer
// declared for an attribute that is already intercepted is not used by the
// setter.
func (b *Builder[O]) Writer(attr string, w Writer[O]) *Builder[O] {
	if attr == "" {
		b.errs = append(b.errs, errors.NewValidationError("attribute", "attribute name is empty"))
		return b
	}
	if w == nil {
		b.errs = append(b.errs, errors.NewValidationError(attr, "writer is nil"))
		return b
	}
	if _, intercepted := b.bindings[attr]; intercepted {
		b.late[attr] = true
	}
	b.writers[attr] = w
	return b
}

// Hook defines the hook called name. A later definition under the same name
// replaces the earlier one. Hooks may be defined before or after the
// registrations that refer to them.
func (b *Builder[O]) Hook(name string, h Hook[O]) *Builder[O] {
	if name == "" {
		b.errs = append(b.errs, errors.NewValidationError("hook", "hook name is empty"))
		return b
	}
	if h == nil {
		b.errs = append(b.errs, errors.NewValidationError("hook", fmt.Sprintf("hook %q is nil", name)))
		return b
	}
	b.hooks[name] = h
	return b
}

// BeforeChange binds the hook called hook to run before each write of attrs.
func (b *Builder[O]) BeforeChange(hook string, attrs ...string) *Builder[O] {
	return b.register(hook, BeforeChange, attrs)
}

// AfterChange binds the hook called hook to run after each write of attrs.
func (b *Builder[O]) AfterChange(hook string, attrs ...string) *Builder[O] {
	return b.register(hook, AfterChange, attrs)
}

func (b *Builder[O]) register(hook string, event Event, attrs []string) *Builder[O] {
	if hook == "" {
		b.errs = append(b.errs, errors.NewValidationError(event.String(), "hook name is empty"))
		return b
	}
	if len(attrs) == 0 {
		b.errs = append(b.errs, errors.NewValidationError(event.String(), fmt.Sprintf("hook %q names no attributes", hook)))
		return b
	}

	for _, attr := range attrs {
		bd, ok := b.bindings[attr]
		if !ok {
			original, err := b.currentWriter(attr)
			if err != nil {
				b.errs = append(b.errs, err)
				continue
			}
			bd = &binding[O]{original: original}
			b.bindings[attr] = bd
		}

		switch event {
		case BeforeChange:
			bd.before = hook
		case AfterChange:
			bd.after = hook
		}
	}
	return b
}

func (b *Builder[O]) currentWriter(attr string) (Writer[O], error) {
	if w, ok := b.writers[attr]; ok {
		return w, nil
	}
	w, err := StructField[O](attr)
	if err != nil {
		return nil, err
	}
	b.writers[attr] = w
	return w, nil
}

// Build returns the schema. All configuration errors recorded by the builder
// are returned together.
func (b *Builder[O]) Build() (*Schema[O], error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("schema %s: %w", b.opts.name, stderrors.Join(b.errs...))
	}

	s := &Schema[O]{
		name:     b.opts.name,
		logger:   b.opts.logger,
		writers:  make(map[string]Writer[O], len(b.writers)),
		bindings: make(map[string]binding[O], len(b.bindings)),
		hooks:    make(map[string]Hook[O], len(b.hooks)),
	}
	for attr, w := range b.writers {
		s.writers[attr] = w
	}
	for attr, bd := range b.bindings {
		s.bindings[attr] = *bd
		s.logger.Debug("attribute intercepted",
			"schema", s.name,
			"attribute", attr,
			"before", bd.before,
			"after", bd.after)
	}
	for name, h := range b.hooks {
		s.hooks[name] = h
	}

	for attr := range b.late {
		s.logger.Warn("writer declared after hook registration is not used by the setter",
			"schema", s.name,
			"attribute", attr)
	}
	for _, name := range s.UndefinedHooks() {
		s.logger.Debug("hook referenced but not defined", "schema", s.name, "hook", name)
	}

	return s, nil
}

// MustBuild is like Build but panics on configuration errors. It is intended
// for package level variables.
func (b *Builder[O]) MustBuild() *Schema[O] {
	s, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("accessorhooks: %v", err))
	}
	return s
}

// Schema is the immutable hook configuration of an owner type. It is safe for
// concurrent use; the owners it writes to are not synchronised.
type Schema[O any] struct {
	name     string
	logger   *slog.Logger
	writers  map[string]Writer[O]
	bindings map[string]binding[O]
	hooks    map[string]Hook[O]
}

// Name returns the schema name.
func (s *Schema[O]) Name() string {
	return s.name
}

// Set writes value to attr of owner.
//
// For an intercepted attribute the before hook runs first, then the original
// writer, then the after hook. The first error stops the sequence and is
// returned unchanged: a failing before hook means nothing was written, a
// failing writer means the after hook did not run.
func (s *Schema[O]) Set(owner O, attr string, value any) error {
	if bd, ok := s.bindings[attr]; ok {
		if err := checkValue(attr, bd.original.ValueType(), value); err != nil {
			return err
		}
		return s.intercept(owner, attr, bd, value)
	}

	w, ok := s.writers[attr]
	if !ok {
		return errors.NewUnknownAttributeError(s.name, attr)
	}
	if err := checkValue(attr, w.ValueType(), value); err != nil {
		return err
	}
	return w.Write(owner, value)
}

func (s *Schema[O]) intercept(owner O, attr string, bd binding[O], value any) error {
	if err := s.run(owner, attr, BeforeChange, bd.before, value); err != nil {
		return err
	}
	if err := bd.original.Write(owner, value); err != nil {
		return err
	}
	return s.run(owner, attr, AfterChange, bd.after, value)
}

func (s *Schema[O]) run(owner O, attr string, event Event, name string, value any) error {
	if name == "" {
		return nil
	}
	return s.resolve(attr, event, name).Call(owner, value)
}

// resolve looks the hook up when the setter runs. An undefined name resolves
// to the no-op hook.
func (s *Schema[O]) resolve(attr string, event Event, name string) Hook[O] {
	if h, ok := s.hooks[name]; ok {
		return h
	}
	s.logger.Debug("skipping undefined hook",
		"schema", s.name,
		"attribute", attr,
		"event", event.String(),
		"hook", name)
	return NoopHook[O]()
}

// Attributes returns the sorted names of all writable attributes.
func (s *Schema[O]) Attributes() []string {
	attrs := make([]string, 0, len(s.writers))
	for attr := range s.writers {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)
	return attrs
}

// Hooked reports whether writes to attr are intercepted.
func (s *Schema[O]) Hooked(attr string) bool {
	_, ok := s.bindings[attr]
	return ok
}

// Binding returns the hook names bound to attr. Empty names mean the slot is unused.
func (s *Schema[O]) Binding(attr string) (before, after string, ok bool) {
	bd, ok := s.bindings[attr]
	if !ok {
		return "", "", false
	}
	return bd.before, bd.after, true
}

// ValueType returns the value type of attr.
func (s *Schema[O]) ValueType(attr string) (reflect.Type, bool) {
	if bd, ok := s.bindings[attr]; ok {
		return bd.original.ValueType(), true
	}
	w, ok := s.writers[attr]
	if !ok {
		return nil, false
	}
	return w.ValueType(), true
}

// UndefinedHooks returns the sorted hook names that are bound to an attribute
// but have no definition. Writes skip such hooks.
func (s *Schema[O]) UndefinedHooks() []string {
	seen := make(map[string]bool)
	for _, bd := range s.bindings {
		for _, name := range []string{bd.before, bd.after} {
			if name == "" {
				continue
			}
			if _, ok := s.hooks[name]; !ok {
				seen[name] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Derive starts a builder seeded with the configuration of s. Intercepted
// attributes keep their captured writers; registering hooks on them replaces
// the slot without wrapping again. Hooks redefined on the derived builder
// apply to the derived schema only.
func (s *Schema[O]) Derive(opts ...Option) *Builder[O] {
	base := []Option{WithName(s.name), WithLogger(s.logger)}
	b := Define[O](append(base, opts...)...)

	for attr, w := range s.writers {
		b.writers[attr] = w
	}
	for attr, bd := range s.bindings {
		copied := bd
		b.bindings[attr] = &copied
	}
	for name, h := range s.hooks {
		b.hooks[name] = h
	}
	return b
}

// Setter returns the setter of attr with a static value type.
func Setter[O, V any](s *Schema[O], attr string) func(owner O, value V) error {
	return func(owner O, value V) error {
		return s.Set(owner, attr, value)
	}
}
