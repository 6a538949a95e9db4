/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads the settings of the hookjournal command.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/accessorhooks/errors"
)

// Journal backends.
const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
)

// Environment variables overriding the file.
const (
	EnvLogLevel       = "ACCESSORHOOKS_LOG_LEVEL"
	EnvJournalBackend = "ACCESSORHOOKS_JOURNAL_BACKEND"
	EnvAccessKey      = "AWS_ACCESS_KEY"
	EnvSecretKey      = "AWS_SECRET_KEY"
	EnvRegion         = "AWS_REGION"
	EnvTable          = "AWS_DDB_TABLE"
)

// Config holds the settings of the hookjournal command.
type Config struct {
	LogLevel string  `yaml:"logLevel"`
	Journal  Journal `yaml:"journal"`
}

// Journal selects and configures the record store of the journal.
type Journal struct {
	Backend   string        `yaml:"backend"`
	Table     string        `yaml:"table"`
	Region    string        `yaml:"region"`
	AccessKey string        `yaml:"accessKey"`
	SecretKey string        `yaml:"secretKey"`
	Endpoint  string        `yaml:"endpoint"`
	Timeout   time.Duration `yaml:"timeout"`
}

// envFile is read by Load from the working directory.
var envFile = ".env"

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Journal: Journal{
			Backend: BackendMemory,
			Timeout: 5 * time.Second,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies a .env file
// from the working directory, if any, and the environment. An empty path skips
// the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// .env is optional; variables already set in the environment win.
	if err := godotenv.Load(envFile); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	override := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	override(&c.LogLevel, EnvLogLevel)
	override(&c.Journal.Backend, EnvJournalBackend)
	override(&c.Journal.AccessKey, EnvAccessKey)
	override(&c.Journal.SecretKey, EnvSecretKey)
	override(&c.Journal.Region, EnvRegion)
	override(&c.Journal.Table, EnvTable)
}

// Validate checks the backend settings and the log level.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	switch c.Journal.Backend {
	case BackendMemory:
	case BackendDynamoDB:
		if c.Journal.Table == "" {
			return errors.NewValidationError("journal.table", "required by the dynamodb backend")
		}
		if c.Journal.Region == "" {
			return errors.NewValidationError("journal.region", "required by the dynamodb backend")
		}
	default:
		return errors.NewValidationError("journal.backend", fmt.Sprintf("unknown backend %q", c.Journal.Backend))
	}

	if c.Journal.Timeout < 0 {
		return errors.NewValidationError("journal.timeout", "must not be negative")
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, errors.NewValidationError("logLevel", fmt.Sprintf("invalid level %q", c.LogLevel))
	}
	return level, nil
}
