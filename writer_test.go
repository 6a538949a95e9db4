/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package accessorhooks_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/accessorhooks"
	"github.com/suparena/accessorhooks/errors"
)

type gadget struct {
	Label string
	Tags  []string
	Owner any
	count int
}

func TestFieldWriter(t *testing.T) {
	w := accessorhooks.Field(func(g *gadget) *int { return &g.count })

	g := &gadget{}
	require.NoError(t, w.Write(g, 5))
	assert.Equal(t, 5, g.count)
	assert.Equal(t, "int", w.ValueType().String())

	err := w.Write(g, "five")
	assert.True(t, errors.IsTypeMismatch(err))
	assert.Equal(t, 5, g.count)
}

func TestAssignWriter(t *testing.T) {
	errReadOnly := stderrors.New("read only")
	w := accessorhooks.Assign(func(g *gadget, v string) error {
		if g.Label == "locked" {
			return errReadOnly
		}
		g.Label = v
		return nil
	})

	g := &gadget{}
	require.NoError(t, w.Write(g, "a"))
	assert.Equal(t, "a", g.Label)

	g.Label = "locked"
	assert.ErrorIs(t, w.Write(g, "b"), errReadOnly)
}

func TestStructFieldWriter(t *testing.T) {
	t.Run("SliceField", func(t *testing.T) {
		w, err := accessorhooks.StructField[*gadget]("tags")
		require.NoError(t, err)

		g := &gadget{}
		require.NoError(t, w.Write(g, []string{"a", "b"}))
		assert.Equal(t, []string{"a", "b"}, g.Tags)

		require.NoError(t, w.Write(g, nil))
		assert.Nil(t, g.Tags)
	})

	t.Run("InterfaceField", func(t *testing.T) {
		w, err := accessorhooks.StructField[*gadget]("owner")
		require.NoError(t, err)

		g := &gadget{}
		require.NoError(t, w.Write(g, 42))
		assert.Equal(t, 42, g.Owner)
	})

	t.Run("NilOwner", func(t *testing.T) {
		w, err := accessorhooks.StructField[*gadget]("label")
		require.NoError(t, err)

		var g *gadget
		assert.True(t, errors.IsValidationError(w.Write(g, "x")))
	})

	t.Run("NotAStructPointer", func(t *testing.T) {
		_, err := accessorhooks.StructField[gadget]("label")
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestHookVariants(t *testing.T) {
	var got []any

	value := accessorhooks.ValueHook(func(_ *gadget, v string) error {
		got = append(got, v)
		return nil
	})
	plain := accessorhooks.PlainHook(func(*gadget) error {
		got = append(got, "plain")
		return nil
	})
	noop := accessorhooks.NoopHook[*gadget]()

	assert.True(t, value.TakesValue())
	assert.False(t, plain.TakesValue())
	assert.False(t, noop.TakesValue())

	require.NoError(t, value.Call(&gadget{}, "v"))
	require.NoError(t, plain.Call(&gadget{}, "ignored"))
	require.NoError(t, noop.Call(&gadget{}, "ignored"))
	require.NoError(t, value.Call(&gadget{}, nil))
	assert.Equal(t, []any{"v", "plain", ""}, got)

	assert.True(t, errors.IsTypeMismatch(value.Call(&gadget{}, 1)))
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "before_change", accessorhooks.BeforeChange.String())
	assert.Equal(t, "after_change", accessorhooks.AfterChange.String())
	assert.Equal(t, "Event(7)", accessorhooks.Event(7).String())
}
