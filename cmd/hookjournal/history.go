/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/suparena/accessorhooks/journal"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history <entityType> <entityID>",
	Short: "Print the recorded writes of an entity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := openJournal(cmd.Context())
		if err != nil {
			return err
		}

		records, err := j.History(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
		if historyJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}
		return printHistory(cmd.OutOrStdout(), records)
	},
}

var appendCmd = &cobra.Command{
	Use:   "append <entityType> <entityID> <attribute> <value>",
	Short: "Record a write by hand",
	Long: `Records that attribute was set to value. A value that is not valid JSON
is recorded as a string.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := openJournal(cmd.Context())
		if err != nil {
			return err
		}

		rec, err := j.Append(cmd.Context(), args[0], args[1], args[2], parseValue(args[3]))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "recorded %s (sequence %d)\n", rec.ID, rec.Sequence)
		return nil
	},
}

var forgetCmd = &cobra.Command{
	Use:   "forget <entityType> <entityID>",
	Short: "Delete the recorded writes of an entity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := openJournal(cmd.Context())
		if err != nil {
			return err
		}

		n, err := j.Forget(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("deleted %d records before failing: %w", n, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d records\n", n)
		return nil
	},
}

func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

func printHistory(w io.Writer, records []journal.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "no records")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQUENCE\tCHANGED AT\tATTRIBUTE\tVALUE")
	for _, rec := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", rec.Sequence, rec.ChangedAt, rec.Attribute, rec.Value)
	}
	return tw.Flush()
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Print records as JSON")
	rootCmd.AddCommand(historyCmd, appendCmd, forgetCmd)
}
