// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mailwright/internal/archive"
	"github.com/pdiddy/mailwright/pkg/types"
)

func TestReadNotes(t *testing.T) {
	file := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("from file"), 0o644))

	tests := []struct {
		name  string
		args  []string
		file  string
		stdin string
		want  string
	}{
		{name: "args joined", args: []string{"ping", "Sam"}, want: "ping Sam"},
		{name: "file wins over args", args: []string{"ignored"}, file: file, want: "from file"},
		{name: "stdin when no args", stdin: "from stdin", want: "from stdin"},
		{name: "dash reads stdin", args: []string{"-"}, stdin: "piped", want: "piped"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readNotes(tt.args, tt.file, strings.NewReader(tt.stdin))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := readNotes(nil, filepath.Join(t.TempDir(), "missing"), strings.NewReader(""))
	assert.Error(t, err)
}

func TestPrintResult(t *testing.T) {
	d := types.Draft{Subject: "Hi", Body: "Hello"}

	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, "json", d))
	assert.JSONEq(t, `{"subject":"Hi","body":"Hello"}`, buf.String())

	buf.Reset()
	require.NoError(t, printResult(&buf, "yaml", d))
	assert.Equal(t, "subject: Hi\nbody: Hello\n", buf.String())

	assert.Error(t, printResult(&buf, "xml", d))
}

func TestLoadRequest(t *testing.T) {
	dir := t.TempDir()

	t.Run("braindump json output", func(t *testing.T) {
		path := filepath.Join(dir, "req.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"emailType": "follow-up",
			"recipient": "Sam",
			"context": "invoice",
			"specificRequest": "",
			"deadline": "Friday",
			"suggestedTone": "direct"
		}`), 0o644))

		req, err := loadRequest(path)
		require.NoError(t, err)
		assert.Equal(t, types.EmailRequest{
			EmailType: types.EmailFollowUp,
			Recipient: "Sam",
			Context:   "invoice",
			Deadline:  "Friday",
			Tone:      types.ToneDirect,
		}, req)
	})

	t.Run("yaml with explicit tone", func(t *testing.T) {
		path := filepath.Join(dir, "req.yaml")
		require.NoError(t, os.WriteFile(path, []byte("emailType: thank-you\nrecipient: Ana\ncontext: the intro\ntone: friendly\nsuggestedTone: formal\n"), 0o644))

		req, err := loadRequest(path)
		require.NoError(t, err)
		assert.Equal(t, types.EmailThankYou, req.EmailType)
		assert.Equal(t, "Ana", req.Recipient)
		assert.Equal(t, types.ToneFriendly, req.Tone)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err := loadRequest(path)
		assert.Error(t, err)
	})
}

func TestDraftRequestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"emailType":"follow-up","recipient":"Sam","context":"invoice"}`), 0o644))

	cmd := &cobra.Command{}
	for _, name := range []string{"from", "type", "recipient", "context", "request", "deadline", "tone"} {
		cmd.Flags().String(name, "", "")
	}
	require.NoError(t, cmd.Flags().Parse([]string{"--from", path, "--recipient", "Alex", "--tone", "formal"}))

	req, err := draftRequest(cmd)
	require.NoError(t, err)
	assert.Equal(t, types.EmailFollowUp, req.EmailType)
	assert.Equal(t, "Alex", req.Recipient)
	assert.Equal(t, "invoice", req.Context)
	assert.Equal(t, types.ToneFormal, req.Tone)
}

func TestCheckTone(t *testing.T) {
	for _, tone := range []string{"", "friendly", "formal", "direct"} {
		assert.NoError(t, checkTone(tone), tone)
	}
	for _, tone := range []string{"casual", "Friendly", "all"} {
		assert.Error(t, checkTone(tone), tone)
	}
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printHistory(&buf, nil))
	assert.Contains(t, buf.String(), "No runs recorded")

	output, err := json.Marshal(types.BrainDumpResult{Recipient: "Sam"})
	require.NoError(t, err)
	input, err := json.Marshal(types.EmailRequest{Recipient: "Ana"})
	require.NoError(t, err)

	entries := []archive.Entry{
		{ID: 2, Kind: archive.KindDraft, Model: "m", Input: input, Output: json.RawMessage(`{}`), CreatedAt: time.Now()},
		{ID: 1, Kind: archive.KindBrainDump, Model: "m", Input: json.RawMessage(`{"brainDump":"x"}`), Output: output, CreatedAt: time.Now()},
		{ID: 0, Kind: archive.KindDraft, Model: "m", Input: json.RawMessage(`not json`), CreatedAt: time.Now()},
	}
	buf.Reset()
	require.NoError(t, printHistory(&buf, entries))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "to Ana")
	assert.Contains(t, lines[2], "to Sam")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[3]), "-"))
}
