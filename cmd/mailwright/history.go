// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mailwright/internal/archive"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List runs recorded with --archive",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show")
	historyCmd.Flags().Bool("json", false, "print full entries, including input and output, as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := archive.Open(cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	entries, err := store.List(ctx, limit)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	return printHistory(cmd.OutOrStdout(), entries)
}

// printHistory writes one summary line per entry.
func printHistory(w io.Writer, entries []archive.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded. Pass --archive to braindump or draft.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tMODEL\tCREATED\tSUMMARY")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			e.ID, e.Kind, e.Model, e.CreatedAt.Local().Format("2006-01-02 15:04"), summarize(e))
	}
	return tw.Flush()
}

// summarize picks the recipient out of an entry's input or output.
func summarize(e archive.Entry) string {
	var v struct {
		Recipient string `json:"recipient"`
	}
	src := e.Input
	if e.Kind == archive.KindBrainDump {
		src = e.Output
	}
	if err := json.Unmarshal(src, &v); err != nil || v.Recipient == "" {
		return "-"
	}
	return "to " + v.Recipient
}
