// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mailwright/internal/archive"
	"github.com/pdiddy/mailwright/internal/compose"
	"github.com/pdiddy/mailwright/pkg/types"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Write friendly, formal and direct drafts of an email",
	Long: `Draft asks the model for three versions of one email.

The request is built from flags, or loaded with --from from a JSON or YAML
file shaped like the output of "mailwright braindump". Flags given alongside
--from override the file's fields. --only prints a single tone.`,
	Example: `  mailwright draft --type follow-up --recipient "Sam (client)" --context "Q3 invoice unpaid"
  mailwright braindump "..." > req.json && mailwright draft --from req.json --only direct`,
	RunE: runDraft,
}

func init() {
	f := draftCmd.Flags()
	f.String("from", "", "load the request from a JSON or YAML file")
	f.String("type", "", "email type: "+joinEmailTypes())
	f.String("recipient", "", "who the email is for")
	f.String("context", "", "what the email is about")
	f.String("request", "", "the specific ask, if any")
	f.String("deadline", "", "the deadline, if any")
	f.String("tone", "", "preferred tone: friendly, formal or direct")
	f.String("only", "", "print only the draft in this tone")
	f.String("format", "json", "output format: json or yaml")
	f.Bool("archive", false, "record the run in the local history")
	rootCmd.AddCommand(draftCmd)
}

func runDraft(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	only, _ := cmd.Flags().GetString("only")
	record, _ := cmd.Flags().GetBool("archive")

	if err := checkTone(only); err != nil {
		return err
	}

	req, err := draftRequest(cmd)
	if err != nil {
		return err
	}
	if err := compose.Validate(req); err != nil {
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

	raw, err := compose.NewGenerator(client).Generate(ctx, req)
	if err != nil {
		logGatewayError(log, err)
		return fmt.Errorf("generating drafts: %w", err)
	}
	drafts, err := compose.Decode(raw)
	if err != nil {
		return err
	}

	if record {
		store, err := archive.Open(cfg.Archive)
		if err != nil {
			return err
		}
		defer store.Close()
		if _, err := store.Record(ctx, archive.KindDraft, client.Model(), req, raw); err != nil {
			return err
		}
	}

	if only == "" {
		return printResult(cmd.OutOrStdout(), format, drafts)
	}
	d, _ := drafts.ByTone(types.Tone(only))
	return printResult(cmd.OutOrStdout(), format, d)
}

// checkTone accepts an empty tone or one of the three draft tones.
func checkTone(tone string) error {
	if tone != "" && !slices.Contains(types.Tones, types.Tone(tone)) {
		return fmt.Errorf("unknown tone %q: use friendly, formal or direct", tone)
	}
	return nil
}

// draftRequest builds the request from --from and the field flags. Only
// flags the user set override values loaded from the file.
func draftRequest(cmd *cobra.Command) (types.EmailRequest, error) {
	var req types.EmailRequest
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		var err error
		if req, err = loadRequest(from); err != nil {
			return types.EmailRequest{}, err
		}
	}

	fields := []struct {
		flag string
		dst  *string
	}{
		{"recipient", &req.Recipient},
		{"context", &req.Context},
		{"request", &req.SpecificRequest},
		{"deadline", &req.Deadline},
	}
	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			*f.dst, _ = cmd.Flags().GetString(f.flag)
		}
	}
	if cmd.Flags().Changed("type") {
		v, _ := cmd.Flags().GetString("type")
		req.EmailType = types.EmailType(v)
	}
	if cmd.Flags().Changed("tone") {
		v, _ := cmd.Flags().GetString("tone")
		req.Tone = types.Tone(v)
	}
	return req, nil
}

// loadRequest reads an EmailRequest from path. A file holding braindump
// output is accepted too: its suggestedTone becomes the request tone.
func loadRequest(path string) (types.EmailRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.EmailRequest{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var in struct {
		types.EmailRequest `yaml:",inline"`
		SuggestedTone      types.Tone `json:"suggestedTone" yaml:"suggestedTone"`
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &in)
	default:
		err = json.Unmarshal(data, &in)
	}
	if err != nil {
		return types.EmailRequest{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	req := in.EmailRequest
	if req.Tone == "" {
		req.Tone = in.SuggestedTone
	}
	return req, nil
}

func joinEmailTypes() string {
	names := make([]string, len(types.EmailTypes))
	for i, t := range types.EmailTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
