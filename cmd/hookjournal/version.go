/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/suparena/accessorhooks"
)

var versionOutput string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	// version needs no configuration
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		return printVersion(cmd.OutOrStdout(), versionOutput)
	},
}

func printVersion(w io.Writer, format string) error {
	info := accessorhooks.GetVersionInfo()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "yaml":
		out, err := yaml.Marshal(info)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "text", "":
		fmt.Fprintf(w, "hookjournal version %s\n", info.Version)
		fmt.Fprintf(w, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(w, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(w, "Go version: %s\n", info.GoVersion)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func init() {
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.AddCommand(versionCmd)
}
