/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/suparena/accessorhooks/config"
	"github.com/suparena/accessorhooks/datastore"
	"github.com/suparena/accessorhooks/datastore/ddb"
	"github.com/suparena/accessorhooks/journal"
)

var (
	configPath string
	debug      bool
	cfg        *config.Config

	rootCmd = &cobra.Command{
		Use:   "hookjournal",
		Short: "Inspect the attribute change journal",
		Long: `hookjournal reads and edits the journal that tracked schemas append to
on every hooked attribute write.

Settings come from the file given with --config, a .env file in the working
directory and the environment (AWS_DDB_TABLE, AWS_REGION, ...).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			if debug {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
			return nil
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// openStore returns the record store selected by the configuration.
func openStore(ctx context.Context, c *config.Config) (datastore.DataStore[journal.Record], error) {
	switch c.Journal.Backend {
	case config.BackendDynamoDB:
		store, err := ddb.Connect[journal.Record](ctx, ddb.ClientOptions{
			Region:    c.Journal.Region,
			AccessKey: c.Journal.AccessKey,
			SecretKey: c.Journal.SecretKey,
			Endpoint:  c.Journal.Endpoint,
		}, c.Journal.Table)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		slog.Warn("memory backend selected, the journal does not outlive this process")
		return journal.NewMemoryStore(), nil
	}
}

func openJournal(ctx context.Context) (*journal.Journal, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return journal.New(store,
		journal.WithTimeout(cfg.Journal.Timeout),
		journal.WithLogger(slog.Default()),
	), nil
}
