// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Secrets
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, AnthropicAPIKey, "  sk-ant-abc123  \n")
				writeFile(t, dir, "smtp-password", "hunter2\n")
				return dir
			},
			want: Secrets{
				AnthropicAPIKey: "sk-ant-abc123",
				"smtp-password": "hunter2",
			},
		},
		{
			name: "returns empty set for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Secrets{},
		},
		{
			name: "skips empty files, dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, AnthropicAPIKey, "valid-key")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				writeFile(t, dir, ".gitkeep", "")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: Secrets{AnthropicAPIKey: "valid-key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}
	dir := t.TempDir()
	writeFile(t, dir, "good-key", "value123")

	badPath := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	var warn bytes.Buffer
	got, err := Load(dir, &warn)
	require.NoError(t, err)
	assert.Equal(t, Secrets{"good-key": "value123"}, got)
	assert.Contains(t, warn.String(), "bad-key")
}

func TestResolve(t *testing.T) {
	s := Secrets{AnthropicAPIKey: "from-file"}

	t.Setenv("MAILWRIGHT_TEST_EMPTY", "")
	t.Setenv("MAILWRIGHT_TEST_KEY", "from-env")

	assert.Equal(t, "from-env", s.Resolve(AnthropicAPIKey, "MAILWRIGHT_TEST_EMPTY", "MAILWRIGHT_TEST_KEY"))
	assert.Equal(t, "from-file", s.Resolve(AnthropicAPIKey, "MAILWRIGHT_TEST_EMPTY"))
	assert.Equal(t, "from-file", s.Resolve(AnthropicAPIKey))
	assert.Empty(t, s.Resolve("missing"))
}

func TestNames(t *testing.T) {
	s := Secrets{"b": "2", "a": "1"}
	assert.ElementsMatch(t, []string{"a", "b"}, s.Names())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
