/*
Package accessorhooks lets a type declare "before" and "after" hooks that run
when one of its attributes is written through its setter.

The configuration is built once, usually in a package level variable, and is
immutable afterwards:
  - Define starts a Builder for an owner type (normally a pointer to a struct)
  - Accessor, Writer and Hook declare writers and named hooks
  - BeforeChange and AfterChange bind hook names to attributes
  - Build returns the Schema, whose Set runs before hook, write, after hook

Hooks come in two shapes. ValueHook receives the value being written,
PlainHook receives nothing. Hook names are resolved when the setter runs, so a
name may be bound before it is defined, and a name that is never defined is
skipped.

Basic Usage:

	type Person struct {
	    FirstName  string
	    SecondName string
	    fullName   string
	}

	var personSchema = accessorhooks.Define[*Person]().
	    Hook("updateFullName", accessorhooks.PlainHook(func(p *Person) error {
	        p.fullName = strings.TrimSpace(p.FirstName + " " + p.SecondName)
	        return nil
	    })).
	    AfterChange("updateFullName", "first_name", "second_name").
	    MustBuild()

	func (p *Person) SetFirstName(v string) error {
	    return personSchema.Set(p, "first_name", v)
	}

A custom writer must be declared with Writer before the hooks that wrap it:
the first hook registration for an attribute captures the writer current at
that moment.

Schemas can be attached to their owner type with Attach, after which Set
resolves the schema from the owner's type. The journal, validate and datastore
packages build on the same hooks to record, check and persist attribute
changes.
*/
package accessorhooks
