//go:build mage

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStatsIsSorted(t *testing.T) {
	counts := map[string][2]int{
		"pkg":       {10, 2},
		"cmd":       {30, 5},
		"internal":  {100, 80},
		"magefiles": {40, 0},
	}

	var first bytes.Buffer
	writeStats(&first, counts)
	for i := 0; i < 5; i++ {
		var again bytes.Buffer
		writeStats(&again, counts)
		assert.Equal(t, first.String(), again.String())
	}

	lines := strings.Split(strings.TrimSpace(first.String()), "\n")
	require.Len(t, lines, 5)
	for i, dir := range []string{"cmd", "internal", "magefiles", "pkg", "total"} {
		assert.True(t, strings.HasPrefix(lines[i], dir), "line %d: %q", i, lines[i])
	}
	assert.Contains(t, lines[4], "production    180  tests     87")
}

func TestCountLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.go")
	require.NoError(t, os.WriteFile(path, []byte("package x\n\n  \nfunc f() {}\n"), 0o644))

	n, err := countLines(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
