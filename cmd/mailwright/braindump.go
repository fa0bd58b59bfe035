// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mailwright/internal/archive"
	"github.com/pdiddy/mailwright/internal/braindump"
	"github.com/pdiddy/mailwright/internal/compose"
	"github.com/pdiddy/mailwright/pkg/types"
)

var brainDumpCmd = &cobra.Command{
	Use:   "braindump [text]",
	Short: "Structure free-form notes into an email request",
	Long: `Braindump sends rough notes to the model and prints the structured
email request it extracts.

The notes come from the arguments, from --file, or from stdin when neither
is given (or when the only argument is "-"). With --draft the extracted
request is passed straight to draft generation and the drafts are printed
as well.`,
	Example: `  mailwright braindump "need to chase Sam about the Q3 invoice, due friday"
  pbpaste | mailwright braindump --draft --format yaml`,
	RunE: runBrainDump,
}

func init() {
	f := brainDumpCmd.Flags()
	f.String("file", "", "read notes from this file")
	f.String("format", "json", "output format: json or yaml")
	f.Bool("draft", false, "also generate drafts from the extracted request")
	f.Bool("archive", false, "record the run in the local history")
	rootCmd.AddCommand(brainDumpCmd)
}

// brainDumpOutput is printed when --draft chains the two steps.
type brainDumpOutput struct {
	Request types.BrainDumpResult `json:"request" yaml:"request"`
	Drafts  types.DraftSet        `json:"drafts" yaml:"drafts"`
}

func runBrainDump(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	format, _ := cmd.Flags().GetString("format")
	chain, _ := cmd.Flags().GetBool("draft")
	record, _ := cmd.Flags().GetBool("archive")

	notes, err := readNotes(args, file, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, log, err := newGateway(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	raw, err := braindump.NewExtractor(client).Extract(ctx, notes)
	if err != nil {
		logGatewayError(log, err)
		return fmt.Errorf("extracting email request: %w", err)
	}
	result, err := braindump.Decode(raw)
	if err != nil {
		return err
	}

	var store *archive.Store
	if record {
		if store, err = archive.Open(cfg.Archive); err != nil {
			return err
		}
		defer store.Close()
		if _, err := store.Record(ctx, archive.KindBrainDump, client.Model(), map[string]string{"brainDump": notes}, raw); err != nil {
			return err
		}
	}

	if !chain {
		return printResult(cmd.OutOrStdout(), format, result)
	}

	req := result.Request()
	rawDrafts, err := compose.NewGenerator(client).Generate(ctx, req)
	if err != nil {
		logGatewayError(log, err)
		return fmt.Errorf("generating drafts: %w", err)
	}
	drafts, err := compose.Decode(rawDrafts)
	if err != nil {
		return err
	}
	if store != nil {
		if _, err := store.Record(ctx, archive.KindDraft, client.Model(), req, rawDrafts); err != nil {
			return err
		}
	}
	return printResult(cmd.OutOrStdout(), format, brainDumpOutput{Request: result, Drafts: drafts})
}

// readNotes returns the brain dump text from args, file or stdin, in that
// order of preference.
func readNotes(args []string, file string, stdin io.Reader) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return string(data), nil
	}
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
