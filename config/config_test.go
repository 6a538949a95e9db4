/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/accessorhooks/errors"
)

// clearEnv blanks every variable Load reads. Blank values are ignored.
func clearEnv(t *testing.T) {
	for _, key := range []string{EnvLogLevel, EnvJournalBackend, EnvAccessKey, EnvSecretKey, EnvRegion, EnvTable} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hookjournal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Journal.Backend)
	assert.Equal(t, 5*time.Second, cfg.Journal.Timeout)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
logLevel: debug
journal:
  backend: dynamodb
  table: changes
  region: us-west-2
  timeout: 2s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, BackendDynamoDB, cfg.Journal.Backend)
	assert.Equal(t, "changes", cfg.Journal.Table)
	assert.Equal(t, "us-west-2", cfg.Journal.Region)
	assert.Equal(t, 2*time.Second, cfg.Journal.Timeout)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "journal:\n  backend: memory\n")
	t.Setenv(EnvJournalBackend, BackendDynamoDB)
	t.Setenv(EnvTable, "from-env")
	t.Setenv(EnvRegion, "eu-central-1")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendDynamoDB, cfg.Journal.Backend)
	assert.Equal(t, "from-env", cfg.Journal.Table)
	assert.Equal(t, "eu-central-1", cfg.Journal.Region)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "journal: [not, a, map]\n"))
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	prev := envFile
	t.Cleanup(func() { envFile = prev })

	t.Run("Missing", func(t *testing.T) {
		envFile = filepath.Join(dir, "missing.env")
		_, err := Load("")
		assert.NoError(t, err)
	})

	t.Run("Malformed", func(t *testing.T) {
		envFile = filepath.Join(dir, "bad.env")
		require.NoError(t, os.WriteFile(envFile, []byte("BAD-KEY=value\n"), 0o600))

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.env")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"UnknownBackend", func(c *Config) { c.Journal.Backend = "redis" }, "journal.backend"},
		{"MissingTable", func(c *Config) {
			c.Journal.Backend = BackendDynamoDB
			c.Journal.Region = "us-west-2"
		}, "journal.table"},
		{"MissingRegion", func(c *Config) {
			c.Journal.Backend = BackendDynamoDB
			c.Journal.Table = "changes"
		}, "journal.region"},
		{"NegativeTimeout", func(c *Config) { c.Journal.Timeout = -time.Second }, "journal.timeout"},
		{"BadLevel", func(c *Config) { c.LogLevel = "loud" }, "logLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			require.True(t, errors.IsValidationError(err))
			var verr *errors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	assert.NoError(t, Default().Validate())
}
