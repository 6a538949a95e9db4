/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/accessorhooks"
	"github.com/suparena/accessorhooks/errors"
	"github.com/suparena/accessorhooks/validate"
)

type member struct {
	Email string
	Nick  string
	Age   int
	ids   []int
}

func memberSchema() *accessorhooks.Schema[*member] {
	return accessorhooks.Define[*member]().
		Hook("checkEmail", validate.Format[*member]("email")).
		Hook("checkNick", validate.NotEmpty[*member]()).
		Hook("checkAge", validate.Min[*member](0)).
		Hook("recordAge", accessorhooks.PlainHook(func(m *member) error {
			m.ids = append(m.ids, m.Age)
			return nil
		})).
		BeforeChange("checkEmail", "email").
		BeforeChange("checkNick", "nick").
		BeforeChange("checkAge", "age").
		AfterChange("recordAge", "age").
		MustBuild()
}

func TestFormat(t *testing.T) {
	schema := memberSchema()
	m := &member{}

	require.NoError(t, schema.Set(m, "email", "ivan@example.com"))
	assert.Equal(t, "ivan@example.com", m.Email)

	err := schema.Set(m, "email", "not an email")
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "ivan@example.com", m.Email, "rejected value must not be written")
}

func TestUnknownFormat(t *testing.T) {
	assert.True(t, validate.KnownFormat("uuid"))
	assert.False(t, validate.KnownFormat("no-such-format"))

	err := validate.Format[*member]("no-such-format").Call(&member{}, "x")
	assert.True(t, errors.IsValidationError(err))
}

func TestNotEmpty(t *testing.T) {
	schema := memberSchema()
	m := &member{Nick: "ivan"}

	assert.True(t, errors.IsValidationError(schema.Set(m, "nick", "  ")))
	assert.Equal(t, "ivan", m.Nick)
	require.NoError(t, schema.Set(m, "nick", "vanya"))
}

func TestMin(t *testing.T) {
	schema := memberSchema()
	m := &member{}

	err := schema.Set(m, "age", -1)
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, m.ids)

	require.NoError(t, schema.Set(m, "age", 1))
	assert.Equal(t, []int{1}, m.ids)
}

func TestMinFloat(t *testing.T) {
	hook := validate.Min[*member](0.5)

	assert.True(t, errors.IsValidationError(hook.Call(&member{}, 0.25)))
	assert.NoError(t, hook.Call(&member{}, 0.5))
}
