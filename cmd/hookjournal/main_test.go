/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/suparena/accessorhooks"
	"github.com/suparena/accessorhooks/journal"
)

func TestPrintVersion(t *testing.T) {
	var text bytes.Buffer
	require.NoError(t, printVersion(&text, "text"))
	assert.Contains(t, text.String(), "hookjournal version "+accessorhooks.Version)

	var js bytes.Buffer
	require.NoError(t, printVersion(&js, "json"))
	var fromJSON accessorhooks.VersionInfo
	require.NoError(t, json.Unmarshal(js.Bytes(), &fromJSON))
	assert.Equal(t, accessorhooks.GetVersionInfo(), fromJSON)

	var ym bytes.Buffer
	require.NoError(t, printVersion(&ym, "yaml"))
	var fromYAML accessorhooks.VersionInfo
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &fromYAML))
	assert.Equal(t, accessorhooks.GetVersionInfo(), fromYAML)

	assert.Error(t, printVersion(&bytes.Buffer{}, "xml"))
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, float64(30), parseValue("30"))
	assert.Equal(t, "Ivan", parseValue(`"Ivan"`))
	assert.Equal(t, "Ivan Ivanov", parseValue("Ivan Ivanov"))
	assert.Nil(t, parseValue("null"))
}

func TestPrintHistory(t *testing.T) {
	var empty bytes.Buffer
	require.NoError(t, printHistory(&empty, nil))
	assert.Equal(t, "no records\n", empty.String())

	var out bytes.Buffer
	require.NoError(t, printHistory(&out, []journal.Record{
		{Sequence: 1, ChangedAt: "2025-03-01T12:00:00.000Z", Attribute: "name", Value: `"Ivan"`},
	}))
	assert.Contains(t, out.String(), "SEQUENCE")
	assert.Contains(t, out.String(), `"Ivan"`)
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"version", "history", "append", "forget"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
