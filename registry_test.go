/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package accessorhooks_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/accessorhooks"
	"github.com/suparena/accessorhooks/errors"
)

type testUser struct {
	Name  string
	Email string
	seen  []string
}

type testProduct struct {
	Name  string
	Price float64
}

func userSchema() *accessorhooks.Schema[*testUser] {
	return accessorhooks.Define[*testUser]().
		AfterChange("remember", "name", "email").
		Hook("remember", accessorhooks.ValueHook(func(u *testUser, v string) error {
			u.seen = append(u.seen, v)
			return nil
		})).
		MustBuild()
}

func TestRegistry(t *testing.T) {
	t.Run("AttachAndResolve", func(t *testing.T) {
		reg := accessorhooks.NewRegistry()
		require.NoError(t, accessorhooks.AttachTo(reg, userSchema()))

		s, err := accessorhooks.SchemaIn[*testUser](reg)
		require.NoError(t, err)
		require.NotNil(t, s)

		u := &testUser{}
		require.NoError(t, accessorhooks.SetIn(reg, u, "name", "Ivan"))
		require.NoError(t, accessorhooks.SetIn(reg, u, "email", "ivan@example.com"))
		assert.Equal(t, []string{"Ivan", "ivan@example.com"}, u.seen)
	})

	t.Run("DuplicateAttach", func(t *testing.T) {
		reg := accessorhooks.NewRegistry()
		require.NoError(t, accessorhooks.AttachTo(reg, userSchema()))

		err := accessorhooks.AttachTo(reg, userSchema())
		assert.True(t, errors.IsAlreadyExists(err))
	})

	t.Run("NilSchema", func(t *testing.T) {
		reg := accessorhooks.NewRegistry()
		err := accessorhooks.AttachTo[*testUser](reg, nil)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("UnattachedType", func(t *testing.T) {
		reg := accessorhooks.NewRegistry()
		_, err := accessorhooks.SchemaIn[*testProduct](reg)
		assert.True(t, errors.IsNotFound(err))

		err = accessorhooks.SetIn(reg, &testProduct{}, "name", "x")
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("Detach", func(t *testing.T) {
		reg := accessorhooks.NewRegistry()
		require.NoError(t, accessorhooks.AttachTo(reg, userSchema()))
		require.NoError(t, accessorhooks.DetachFrom[*testUser](reg))

		_, err := accessorhooks.SchemaIn[*testUser](reg)
		assert.True(t, errors.IsNotFound(err))
		assert.True(t, errors.IsNotFound(accessorhooks.DetachFrom[*testUser](reg)))
	})

	t.Run("DifferentTypes", func(t *testing.T) {
		reg := accessorhooks.NewRegistry()
		require.NoError(t, accessorhooks.AttachTo(reg, userSchema()))
		require.NoError(t, accessorhooks.AttachTo(reg, accessorhooks.Define[*testProduct]().Accessor("name", "price").MustBuild()))

		assert.Equal(t, []string{"*accessorhooks_test.testProduct", "*accessorhooks_test.testUser"}, reg.Types())

		p := &testProduct{}
		require.NoError(t, accessorhooks.SetIn(reg, p, "price", 9.5))
		assert.Equal(t, 9.5, p.Price)
	})
}

func TestDefaultRegistry(t *testing.T) {
	s := accessorhooks.MustAttach(userSchema())
	t.Cleanup(func() {
		_ = accessorhooks.DetachFrom[*testUser](accessorhooks.DefaultRegistry())
	})

	got, err := accessorhooks.SchemaOf[*testUser]()
	require.NoError(t, err)
	assert.Same(t, s, got)

	u := &testUser{}
	require.NoError(t, accessorhooks.Set(u, "name", "Ivan"))
	assert.Equal(t, "Ivan", u.Name)
	assert.Equal(t, []string{"Ivan"}, u.seen)

	assert.Panics(t, func() { accessorhooks.MustAttach(userSchema()) })
}

func TestRegistryThreadSafety(t *testing.T) {
	reg := accessorhooks.NewRegistry()
	require.NoError(t, accessorhooks.AttachTo(reg, userSchema()))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			u := &testUser{}
			_ = accessorhooks.SetIn(reg, u, "name", fmt.Sprintf("user%d", id))
		}(i)
		go func() {
			defer wg.Done()
			_ = reg.Types()
		}()
	}
	wg.Wait()

	assert.Len(t, reg.Types(), 1)
}
